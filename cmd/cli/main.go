package main

import (
	"context"
	"fmt"
	"os"

	"traderace/cmd"
	"traderace/internal"
	"traderace/internal/db/models/postgres/public/model"
	"traderace/internal/logger"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "traderace",
	Short: "Paper-trading race between model-driven agents",
	PersistentPreRun: func(c *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

var runCycleCmd = &cobra.Command{
	Use:   "run-cycle",
	Short: "Run one decision cycle for all active agents, or one agent",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		ctx := logger.AddToContext(context.Background(), logger.New())

		rawAgentID, _ := c.Flags().GetString("agent-id")
		if rawAgentID != "" {
			agentID, err := uuid.Parse(rawAgentID)
			if err != nil {
				return fmt.Errorf("invalid agent-id '%s': %w", rawAgentID, err)
			}
			result, err := handler.AgentRunner.RunAgentOnce(ctx, agentID)
			if err != nil {
				return err
			}
			internal.Pprint(result)
			return nil
		}

		results, err := handler.AgentRunner.RunAllAgents(ctx, handler.AgentRepository)
		if err != nil {
			return err
		}
		internal.Pprint(results)
		return nil
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest-candles",
	Short: "Fetch recent hourly candles for every enabled asset",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		ctx := logger.AddToContext(context.Background(), logger.New())

		bars, _ := c.Flags().GetInt("bars")
		count, err := handler.IngestionService.IngestLatestCandles(ctx, bars)
		if err != nil {
			return err
		}
		fmt.Printf("ingested %d candles\n", count)
		return nil
	},
}

var addAgentCmd = &cobra.Command{
	Use:   "add-agent",
	Short: "Register a new trading agent",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		name, _ := c.Flags().GetString("name")
		provider, _ := c.Flags().GetString("provider")
		instructions, _ := c.Flags().GetString("instructions")
		if name == "" {
			return fmt.Errorf("--name is required")
		}

		modelProvider := model.ModelProvider("")
		if err := modelProvider.Scan(provider); err != nil {
			return err
		}

		agent, err := handler.AgentRepository.Add(nil, model.Agent{
			Name:          name,
			ModelProvider: modelProvider,
			Instructions:  instructions,
			IsActive:      true,
		})
		if err != nil {
			return err
		}
		internal.Pprint(agent)
		return nil
	},
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP API",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		port, _ := c.Flags().GetInt("port")
		return handler.StartApi(port)
	},
}

func init() {
	runCycleCmd.Flags().String("agent-id", "", "run only this agent")
	ingestCmd.Flags().Int("bars", 24, "hourly bars to fetch per asset")
	addAgentCmd.Flags().String("name", "", "display name")
	addAgentCmd.Flags().String("provider", string(model.ModelProvider_Chatgpt), "model provider (chatgpt or echo)")
	addAgentCmd.Flags().String("instructions", "", "standing instructions included in every prompt")
	apiCmd.Flags().Int("port", 3009, "listen port")

	rootCmd.AddCommand(runCycleCmd, ingestCmd, addAgentCmd, apiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
