// formfixture serves the account application form fixture, or writes it to
// disk for local-file navigation.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/formflow/formflow/cmd/formfixture/server"
)

func main() {
	root := &cobra.Command{
		Use:   "formfixture",
		Short: "Account application form fixture",
	}
	root.AddCommand(serveCmd(), writeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fixture over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			cfg.Addr = addr
			srv, err := server.NewServer(cfg)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			listening, err := srv.Start()
			if err != nil {
				return fmt.Errorf("start server: %w", err)
			}
			log.Printf("Fixture available at http://%s (token endpoint: /token)", listening)

			// Block forever
			select {}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func writeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the fixture document to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := server.WriteFixture(out); err != nil {
				return err
			}
			log.Printf("Fixture written to %s", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "fixture.html", "output path")
	return cmd
}
