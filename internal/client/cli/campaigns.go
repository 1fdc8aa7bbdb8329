package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (c *Cli) runCampaigns(ctx context.Context) error {
	if err := c.authorize(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.ListCampaigns(ctx)
	if err != nil {
		return err
	}

	if len(resp.Campaigns) == 0 {
		c.io.Println("No campaigns found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tALIAS\tSTATE")
	for _, cmp := range resp.Campaigns {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", cmp.ID, cmp.Name, cmp.Alias, cmp.State)
	}
	return tw.Flush()
}
