package globals

import "github.com/spf13/cobra"

// ListFlags holds the flags shared by the list subcommands.
type ListFlags struct {
	Search string
	Limit  int
}

// AddListFlags registers the listing flags on cmd.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVar(&flags.Search, "search", "",
		"Filter by handle, parcel, or ordinance number")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// ParseList reads the listing flags back from cmd. It panics when cmd
// never had AddListFlags called on it.
func ParseList(cmd *cobra.Command) *ListFlags {
	return &ListFlags{
		Search: flagString(cmd, "search"),
		Limit:  flagInt(cmd, "limit"),
	}
}

func flagString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("flag " + name + ": " + err.Error())
	}
	return val
}

func flagInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("flag " + name + ": " + err.Error())
	}
	return val
}
