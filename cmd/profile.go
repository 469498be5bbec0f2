package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkscout/linkscout/linkedin"
)

var (
	profileUsername string
	profileURN      string
	profileURL      string
)

// profileCmd groups the profile subcommands
var profileCmd = &cobra.Command{
	Use:               "profile",
	Short:             "Fetch member profiles and their activity",
	PersistentPreRunE: initializeApp,
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a full profile by username, URN, or public URL",
	RunE:  runProfileGet,
}

var profilePostsCmd = &cobra.Command{
	Use:   "posts <urn>",
	Short: "List posts authored by a member",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilePosts,
}

var profileCommentsCmd = &cobra.Command{
	Use:   "comments <urn>",
	Short: "List comments a member left on posts",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileComments,
}

var profileReactionsCmd = &cobra.Command{
	Use:   "reactions <urn>",
	Short: "List reactions a member left on posts",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileReactions,
}

var profileConnectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "Show a member's connection and follower counts",
	RunE:  runProfileConnections,
}

var batchConcurrency int

var profileBatchCmd = &cobra.Command{
	Use:   "batch <username>...",
	Short: "Fetch multiple profiles concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProfileBatch,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	profileGetCmd.Flags().StringVarP(&profileUsername, "username", "u", "", "public username")
	profileGetCmd.Flags().StringVar(&profileURN, "urn", "", "member URN")
	profileGetCmd.Flags().StringVar(&profileURL, "url", "", "public profile URL")
	profileCmd.AddCommand(profileGetCmd)

	addPageFlags(profilePostsCmd)
	profileCmd.AddCommand(profilePostsCmd)

	addPageFlags(profileCommentsCmd)
	profileCmd.AddCommand(profileCommentsCmd)

	addPageFlags(profileReactionsCmd)
	profileCmd.AddCommand(profileReactionsCmd)

	profileConnectionsCmd.Flags().StringVarP(&profileUsername, "username", "u", "", "public username")
	profileConnectionsCmd.Flags().StringVar(&profileURN, "urn", "", "member URN")
	profileCmd.AddCommand(profileConnectionsCmd)

	profileBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent fetches")
	profileCmd.AddCommand(profileBatchCmd)
}

func runProfileGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	var (
		result any
		err    error
	)
	if profileURL != "" {
		result, err = client.GetProfileByURL(ctx, profileURL)
	} else {
		result, err = client.GetProfile(ctx, linkedin.ProfileLookup{
			Username: profileUsername,
			URN:      profileURN,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	return printJSON(result)
}

func runProfilePosts(cmd *cobra.Command, args []string) error {
	result, err := client.GetProfilePosts(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch profile posts: %w", err)
	}
	return printJSON(result)
}

func runProfileComments(cmd *cobra.Command, args []string) error {
	result, err := client.GetProfileComments(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch profile comments: %w", err)
	}
	return printJSON(result)
}

func runProfileReactions(cmd *cobra.Command, args []string) error {
	result, err := client.GetProfileReactions(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch profile reactions: %w", err)
	}
	return printJSON(result)
}

func runProfileBatch(cmd *cobra.Command, args []string) error {
	results, err := client.BatchGetProfiles(context.Background(), args, batchConcurrency)
	if err != nil {
		return fmt.Errorf("batch profile fetch failed: %w", err)
	}
	if len(results) < len(args) {
		logger.Warn().
			Int("requested", len(args)).
			Int("fetched", len(results)).
			Msg("Some profiles could not be fetched")
	}
	return printJSON(results)
}

func runProfileConnections(cmd *cobra.Command, args []string) error {
	result, err := client.GetProfileConnectionCount(context.Background(), linkedin.ProfileLookup{
		Username: profileUsername,
		URN:      profileURN,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch connection count: %w", err)
	}
	return printJSON(result)
}
