package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	pkgapi "github.com/iudanet/keitarosync/pkg/api"
)

func (c *Cli) runSync(ctx context.Context, rawCampaignID string) error {
	campaignID, err := parseID("campaign", rawCampaignID)
	if err != nil {
		return err
	}
	if err := c.authorize(ctx); err != nil {
		return err
	}

	c.io.Printf("Synchronizing campaign %d...\n", campaignID)

	resp, err := c.apiClient.SyncCampaign(ctx, campaignID)
	if err != nil {
		return err
	}

	if len(resp.Flows) == 0 {
		c.io.Println("No flows with offers (or the tracker did not answer).")
		return nil
	}

	c.io.Printf("✓ %d flow(s) synchronized\n", len(resp.Flows))
	return printFlows(c, resp.Flows)
}

func printFlows(c *Cli, flows []pkgapi.Flow) error {
	tw := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "FLOW\tNAME\tTYPE\tSTATE\tOFFERS")
	for _, f := range flows {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Type, f.State, formatOffers(f.Offers))
	}
	return tw.Flush()
}

// formatOffers печатает офферы потока как "3:60% 5:40%"
func formatOffers(offers []pkgapi.FlowOffer) string {
	if len(offers) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(offers))
	for _, o := range offers {
		parts = append(parts, fmt.Sprintf("%d:%d%%", o.OfferID, o.Share))
	}
	return strings.Join(parts, " ")
}
