package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// postCmd groups the post subcommands
var postCmd = &cobra.Command{
	Use:               "post",
	Short:             "Fetch posts and their engagement",
	PersistentPreRunE: initializeApp,
}

var postGetCmd = &cobra.Command{
	Use:   "get <urn>",
	Short: "Fetch a single post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostGet,
}

var postCommentsCmd = &cobra.Command{
	Use:   "comments <urn>",
	Short: "List comments on a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostComments,
}

var postReactionsCmd = &cobra.Command{
	Use:   "reactions <urn>",
	Short: "List reactions on a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostReactions,
}

var postRepostsCmd = &cobra.Command{
	Use:   "reposts <urn>",
	Short: "List reposts of a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostReposts,
}

func init() {
	rootCmd.AddCommand(postCmd)

	postCmd.AddCommand(postGetCmd)

	addPageFlags(postCommentsCmd)
	postCmd.AddCommand(postCommentsCmd)

	addPageFlags(postReactionsCmd)
	postCmd.AddCommand(postReactionsCmd)

	addPageFlags(postRepostsCmd)
	postCmd.AddCommand(postRepostsCmd)
}

func runPostGet(cmd *cobra.Command, args []string) error {
	result, err := client.GetPost(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}
	return printJSON(result)
}

func runPostComments(cmd *cobra.Command, args []string) error {
	result, err := client.GetPostComments(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch post comments: %w", err)
	}
	return printJSON(result)
}

func runPostReactions(cmd *cobra.Command, args []string) error {
	result, err := client.GetPostReactions(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch post reactions: %w", err)
	}
	return printJSON(result)
}

func runPostReposts(cmd *cobra.Command, args []string) error {
	result, err := client.GetPostReposts(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch post reposts: %w", err)
	}
	return printJSON(result)
}
