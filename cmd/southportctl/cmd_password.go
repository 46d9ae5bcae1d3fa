// cmd/southportctl/cmd_password.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seftonweb/southportlocal/internal/app/system/auth"
)

// hashPasswordCmd produces the bcrypt hash that goes into
// SOUTHPORT_ADMIN_PASSWORD_HASH. The password can be given as an argument
// or typed at a prompt to keep it out of shell history.
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Hash the operator password for admin_password_hash",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			fmt.Fprint(os.Stderr, "Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		fmt.Println(hash)
		return nil
	},
}
