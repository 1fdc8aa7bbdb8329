package cli

import (
	"context"

	pkgapi "github.com/iudanet/keitarosync/pkg/api"
)

func (c *Cli) runPush(ctx context.Context, rawFlowID string) error {
	flowID, err := parseID("flow", rawFlowID)
	if err != nil {
		return err
	}
	if err := c.authorize(ctx); err != nil {
		return err
	}

	c.io.Printf("Pushing flow %d...\n", flowID)

	resp, err := c.apiClient.PushFlow(ctx, flowID)
	if err != nil {
		return err
	}

	c.io.Println("✓ Flow updated in the tracker")
	return printFlows(c, []pkgapi.Flow{resp.Flow})
}
