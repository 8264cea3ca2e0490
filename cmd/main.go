package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consulta-ai/consulta-ai/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "consulta",
		Short: "consulta",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), service.NewTrainCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
