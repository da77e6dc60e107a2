package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/servicecordiale/cordiale/internal/catalog"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "List the offers in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetInt("id")
		if id == 0 {
			writeOffers(cmd.OutOrStdout(), cat)
			return nil
		}
		return writeOffer(cmd.OutOrStdout(), cat, id)
	},
}

func init() {
	offersCmd.Flags().Int("id", 0, "Show the full details of one offer")
}

func writeOffer(w io.Writer, cat *catalog.Catalog, id int) error {
	o, ok := cat.ByID(id)
	if !ok {
		return fmt.Errorf("no offer with id %d in %s", id, cat.Source())
	}
	fmt.Fprintf(w, "%s\n%s\n\n%s\n", o.Name, o.Title, o.Description)
	if o.ImageRef != "" {
		fmt.Fprintf(w, "\nimage: %s\n", o.ImageRef)
	}
	return nil
}

func writeOffers(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "source: %s\n\n", cat.Source())
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tTITLE\tIMAGE")
	for i, o := range cat.Items() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", i+1, o.ID, o.Name, o.Title, o.ImageRef)
	}
	tw.Flush()
}
