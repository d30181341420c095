package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	isTerminalFunc   = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

	errHelp        = errors.New("help provided")
	errRowsSkipped = errors.New("some rows were skipped")
)

type commandLine struct {
	conf       *core.Config
	roleSvc    *role.Service
	studentSvc *student.Service
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  token -role ROLE_ID [-prompt-secret] - issue an API token for a role")
	fmt.Fprintln(cli.out, "  import -file PATH - check a student spreadsheet (.xlsx|.csv) against the sample data")
	fmt.Fprintln(cli.out, "  template -out PATH - write the student import template")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	tokenCmd := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenRole := tokenCmd.String("role", "", "The ID of the role the token is issued for.")
	tokenPrompt := tokenCmd.Bool("prompt-secret", false, "Prompt for the signing key instead of using the configured one.")

	importCmd := flag.NewFlagSet("import", flag.ContinueOnError)
	importFile := importCmd.String("file", "", "The spreadsheet to import.")

	templateCmd := flag.NewFlagSet("template", flag.ContinueOnError)
	templateOut := templateCmd.String("out", "students.xlsx", "Where to write the template.")

	for _, fs := range []*flag.FlagSet{tokenCmd, importCmd, templateCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *tokenRole == "" {
			tokenCmd.Usage()
			return errHelp
		}
		secret := cli.conf.SecretKey
		if *tokenPrompt {
			fmt.Fprint(cli.out, "Enter secret key:")
			key, err := readPasswordFunc(syscall.Stdin)
			fmt.Fprintln(cli.out)
			if err != nil {
				return err
			}
			if len(key) == 0 {
				tokenCmd.Usage()
				return errHelp
			}
			secret = string(key)
		}
		return cli.issueToken(*tokenRole, secret)
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importStudents(*importFile)
	case "template":
		if err := templateCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.writeTemplate(*templateOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
