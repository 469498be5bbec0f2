package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkscout/linkscout/linkedin"
)

var (
	companyID   string
	companyName string
)

// companyCmd groups the company subcommands
var companyCmd = &cobra.Command{
	Use:               "company",
	Short:             "Fetch company details, posts, and jobs",
	PersistentPreRunE: initializeApp,
}

var companyGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch company details by ID or universal name",
	RunE:  runCompanyGet,
}

var companyDomainCmd = &cobra.Command{
	Use:   "domain <domain>",
	Short: "Fetch company details by web domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyDomain,
}

var companyPostsCmd = &cobra.Command{
	Use:   "posts <company-id>",
	Short: "List posts from a company page",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompanyPosts,
}

var companyJobsCmd = &cobra.Command{
	Use:   "jobs <company-id>...",
	Short: "List open jobs at one or more companies",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompanyJobs,
}

func init() {
	rootCmd.AddCommand(companyCmd)

	companyGetCmd.Flags().StringVar(&companyID, "id", "", "numeric company ID")
	companyGetCmd.Flags().StringVar(&companyName, "name", "", "universal name (company page slug)")
	companyCmd.AddCommand(companyGetCmd)

	companyCmd.AddCommand(companyDomainCmd)

	addPageFlags(companyPostsCmd)
	companyCmd.AddCommand(companyPostsCmd)

	addPageFlags(companyJobsCmd)
	companyCmd.AddCommand(companyJobsCmd)
}

func runCompanyGet(cmd *cobra.Command, args []string) error {
	result, err := client.GetCompany(context.Background(), linkedin.CompanyLookup{
		ID:            companyID,
		UniversalName: companyName,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch company: %w", err)
	}
	return printJSON(result)
}

func runCompanyDomain(cmd *cobra.Command, args []string) error {
	result, err := client.GetCompanyByDomain(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch company by domain: %w", err)
	}
	return printJSON(result)
}

func runCompanyPosts(cmd *cobra.Command, args []string) error {
	result, err := client.GetCompanyPosts(context.Background(), args[0], pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch company posts: %w", err)
	}
	return printJSON(result)
}

func runCompanyJobs(cmd *cobra.Command, args []string) error {
	result, err := client.GetCompanyJobs(context.Background(), args, pageOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch company jobs: %w", err)
	}
	return printJSON(result)
}
