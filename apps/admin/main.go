package main

import (
	"log"
	"os"

	"github.com/su-ri-ya/littlechampions/core"
	"github.com/su-ri-ya/littlechampions/core/role"
	"github.com/su-ri-ya/littlechampions/core/student"
	"github.com/su-ri-ya/littlechampions/storage/database/dummy"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// the admin tool works on its own copy of the sample data
	db, err := dummydb.Open(dummydb.WithSeed())
	errAndDie(err)

	// start CLI
	cli := commandLine{
		conf:       conf,
		roleSvc:    role.NewService(dummydb.NewRoleRepository(db)),
		studentSvc: student.NewService(dummydb.NewStudentRepository(db), conf.ImportMaxRows),
		out:        os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp && err != errRowsSkipped {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
