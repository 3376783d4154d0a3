package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/steamdirs/internal/app"
	"github.com/firefly-engineering/steamdirs/internal/catalog"
)

var listMissing bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and their folders",
	Long: `List prints every catalog entry with the folder the browser would open,
without taking over the terminal.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listMissing, "missing", false, "Only show entries whose folder does not exist")
	listCmd.Flags().BoolVar(&proxiedOnly, "proxied-only", false, "Only show non-Steam shortcuts")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a := app.Default

	cat, err := a.Catalog()
	if err != nil {
		return err
	}

	if proxiedOnly {
		cat = cat.Filter(func(it catalog.Item) bool { return it.Proxied })
	}

	if cat.Empty() {
		logInfo("No games found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAPP ID\tTYPE\tFOLDER\tSTATUS")
	fmt.Fprintln(w, "----\t------\t----\t------\t------")

	missing := 0
	for _, it := range cat.Items() {
		exists := a.FS.Exists(it.Path)
		if !exists {
			missing++
		}
		if listMissing && exists {
			continue
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			it.Name, it.AppID, itemKind(it), it.Path, folderStatus(exists))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if missing > 0 {
		logWarning("%d of %d folders are missing", missing, cat.Len())
	}
	return nil
}

func itemKind(it catalog.Item) string {
	if it.Proxied {
		return "non-steam"
	}
	return "steam"
}

func folderStatus(exists bool) string {
	if exists {
		return "✓ present"
	}
	return "✗ missing"
}
