package main

import (
	"fmt"

	"github.com/su-ri-ya/littlechampions/apps/api/echo"
)

// issueToken prints a signed API token carrying the role's claims.
func (cli *commandLine) issueToken(roleID, secret string) error {
	r, err := cli.roleSvc.GetByID(roleID)
	if err != nil {
		return err
	}
	conf := *cli.conf
	conf.SecretKey = secret
	token, err := echoapi.GenerateToken(&conf, echoapi.NewClaims(&conf, r))
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, token)
	return nil
}
