package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	pkgapi "github.com/iudanet/keitarosync/pkg/api"
)

// AssignOptions параметры команды assign
type AssignOptions struct {
	State   string
	OfferID int64
	Share   int
	Pinned  bool
}

func (c *Cli) runAssignments(ctx context.Context, rawFlowID string) error {
	flowID, err := parseID("flow", rawFlowID)
	if err != nil {
		return err
	}
	if err := c.authorize(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.ListAssignments(ctx, flowID)
	if err != nil {
		return err
	}

	if len(resp.OfferFlows) == 0 {
		c.io.Printf("Flow %d has no offer assignments.\n", flowID)
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "OFFER\tSHARE\tSTATE\tPINNED")
	for _, a := range resp.OfferFlows {
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%s\t%t\n", a.Offer, a.Share, a.State, a.IsPinned)
	}
	return tw.Flush()
}

func (c *Cli) runAssign(ctx context.Context, rawFlowID string, opts AssignOptions) error {
	flowID, err := parseID("flow", rawFlowID)
	if err != nil {
		return err
	}
	if opts.OfferID <= 0 {
		return fmt.Errorf("--offer is required and must be positive")
	}
	if opts.Share < 0 {
		return fmt.Errorf("--share must not be negative, got %d", opts.Share)
	}
	if err := c.authorize(ctx); err != nil {
		return err
	}

	resp, err := c.apiClient.UpsertAssignment(ctx, flowID, pkgapi.AssignmentRequest{
		OfferID:  opts.OfferID,
		Share:    opts.Share,
		State:    opts.State,
		IsPinned: opts.Pinned,
	})
	if err != nil {
		return err
	}

	c.io.Printf("✓ Offer %d on flow %d: share %d, state %s, pinned %t\n",
		resp.OfferID, resp.FlowID, resp.Share, resp.State, resp.IsPinned)
	c.io.Printf("Run 'keitarosync push %d' to send the change to the tracker.\n", resp.FlowID)
	return nil
}
