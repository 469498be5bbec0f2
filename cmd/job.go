package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linkscout/linkscout/linkedin"
)

var (
	jobKeywords   string
	jobLocation   string
	jobCompanies  []string
	jobDatePosted string
	jobRemote     bool
	jobEasyApply  bool
	jobSort       string
)

// jobCmd groups the job subcommands
var jobCmd = &cobra.Command{
	Use:               "job",
	Short:             "Search and fetch job postings",
	PersistentPreRunE: initializeApp,
}

var jobSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search job postings",
	RunE:  runJobSearch,
}

var jobGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Fetch a single job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobGet,
}

func init() {
	rootCmd.AddCommand(jobCmd)

	jobSearchCmd.Flags().StringVarP(&jobKeywords, "keywords", "k", "", "search keywords")
	jobSearchCmd.Flags().StringVarP(&jobLocation, "location", "l", "", "location name")
	jobSearchCmd.Flags().StringSliceVar(&jobCompanies, "company", nil, "company IDs (repeatable)")
	jobSearchCmd.Flags().StringVar(&jobDatePosted, "date-posted", "", "posting window (past-24h, past-week, past-month)")
	jobSearchCmd.Flags().BoolVar(&jobRemote, "remote", false, "only remote jobs")
	jobSearchCmd.Flags().BoolVar(&jobEasyApply, "easy-apply", false, "only easy-apply jobs")
	jobSearchCmd.Flags().StringVar(&jobSort, "sort", "", "sort order (relevance, recent)")
	jobSearchCmd.Flags().IntVar(&pageStart, "start", 0, "pagination offset")
	jobCmd.AddCommand(jobSearchCmd)

	jobCmd.AddCommand(jobGetCmd)
}

func runJobSearch(cmd *cobra.Command, args []string) error {
	opts := linkedin.JobSearchOptions{
		Keywords:   jobKeywords,
		Location:   jobLocation,
		CompanyIDs: jobCompanies,
		DatePosted: jobDatePosted,
		Sort:       jobSort,
		Start:      pageStart,
	}

	// Absence of a boolean flag must not be sent as false
	if cmd.Flags().Changed("remote") {
		opts.Remote = &jobRemote
	}
	if cmd.Flags().Changed("easy-apply") {
		opts.EasyApply = &jobEasyApply
	}

	result, err := client.SearchJobs(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("job search failed: %w", err)
	}
	return printJSON(result)
}

func runJobGet(cmd *cobra.Command, args []string) error {
	result, err := client.GetJobDetails(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch job: %w", err)
	}
	return printJSON(result)
}
