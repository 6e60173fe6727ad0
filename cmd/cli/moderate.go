package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Priyankg101/content-moderator/internal/initialization"
	"github.com/Priyankg101/content-moderator/pkg/domain"
)

func NewModerateCommand(container *initialization.Container) *cobra.Command {
	var (
		sensitivity string
		policyFile  string
	)

	cmd := &cobra.Command{
		Use:   "moderate [items-file]",
		Short: "Moderate a list of content items",
		Long: `Moderate reads a JSON array of content items from the given file (or
stdin when the file is "-") and prints the aggregate moderation result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModerate(container, args[0], policyFile, domain.Sensitivity(sensitivity))
		},
	}

	cmd.Flags().StringVarP(&sensitivity, "sensitivity", "s", "medium", "Sensitivity level (low, medium, high)")
	cmd.Flags().StringVarP(&policyFile, "policy", "p", "", "Path to a JSON policy file with category lists")

	return cmd
}

func runModerate(container *initialization.Container, itemsFile, policyFile string, sensitivity domain.Sensitivity) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	items, err := readItems(itemsFile)
	if err != nil {
		return err
	}

	var policy *domain.PolicyConfig
	if policyFile != "" {
		policy, err = readPolicy(policyFile)
		if err != nil {
			return err
		}
	}

	result := container.Pipeline().Moderate(ctx, items, policy, sensitivity)

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	fmt.Println(string(encoded))
	return nil
}

func readItems(path string) ([]domain.ContentItem, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	var items []domain.ContentItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	return items, nil
}

func readPolicy(path string) (*domain.PolicyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}

	var policy domain.PolicyConfig
	if err := json.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	return &policy, nil
}
