package cli

import (
	"github.com/spf13/cobra"

	"github.com/dhbw-labs/academic-assistant/internal/core/domain"
)

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "List and read dhbw:// resources",
	Long: `Resources are syllabi, news articles and publication lists addressed by
URIs such as dhbw://syllabus/webeng or dhbw://publications/p2.`,
}

var resourceListCmd = &cobra.Command{
	Use:       "list [kind]",
	Short:     "List resources, optionally of one kind",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"syllabus", "news", "publications"},
	RunE:      runResourceList,
}

var resourceReadCmd = &cobra.Command{
	Use:   "read [uri]",
	Short: "Read a resource by URI",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourceRead,
}

func init() {
	resourceCmd.AddCommand(resourceListCmd)
	resourceCmd.AddCommand(resourceReadCmd)
	rootCmd.AddCommand(resourceCmd)
}

func runResourceList(cmd *cobra.Command, args []string) error {
	kinds := domain.ResourceKinds
	if len(args) == 1 {
		kind, err := domain.ParseResourceKind(args[0])
		if err != nil {
			return err
		}
		kinds = []domain.ResourceKind{kind}
	}

	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	total := 0
	for _, kind := range kinds {
		descriptors, err := resourceService.List(cmd.Context(), kind)
		if err != nil {
			return err
		}
		for _, d := range descriptors {
			cmd.Printf("%-36s %s\n", d.URI, d.Description)
		}
		total += len(descriptors)
	}

	if total == 0 {
		cmd.Println("No resources found.")
	}
	return nil
}

func runResourceRead(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd.Context()); err != nil {
		return err
	}

	content, err := resourceService.ReadURI(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Println(content.Text)
	return nil
}
