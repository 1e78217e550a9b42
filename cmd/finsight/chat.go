package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mwhitney/finsight/internal/advisor"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat [plan file]",
	Short: "Chat with a local LLM advisor grounded in your plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		model, _ := cmd.Flags().GetString("model")

		report, err := runPlanFile(args[0], false)
		if err != nil {
			log.Fatalf("Loading plan failed: %v", err)
		}

		client := advisor.NewClient(endpoint, model)
		history := []advisor.Message{
			{Role: "system", Content: advisor.BuildSystemPrompt(report.Profile, report.Health)},
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			cancel()
		}()

		fmt.Println("Ask about your plan. Type \"exit\" to leave.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				continue
			}
			if question == "exit" || question == "quit" {
				return
			}

			history = append(history, advisor.Message{Role: "user", Content: question})
			chunks, err := client.Stream(ctx, history)
			if err != nil {
				log.Printf("ERROR: advisor: %v", err)
				continue
			}

			var reply strings.Builder
			for chunk := range chunks {
				if chunk.Err != nil {
					log.Printf("ERROR: stream: %v", chunk.Err)
					break
				}
				fmt.Print(chunk.Text)
				reply.WriteString(chunk.Text)
			}
			fmt.Println()
			history = append(history, advisor.Message{Role: "assistant", Content: reply.String()})
		}
	},
}

func init() {
	chatCmd.Flags().String("endpoint", "http://localhost:11434", "LLM provider base URL")
	chatCmd.Flags().String("model", "llama3.2", "model name")
}
