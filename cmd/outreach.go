package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pipeline-cli/internal/tracker"
)

var (
	outreachContact string
	outreachChannel string
	outreachMsgType string
	responseID      string
	responseText    string
)

var outreachCmd = &cobra.Command{
	Use:   "outreach",
	Short: "Record outreach events and responses",
}

var outreachSendCmd = &cobra.Command{
	Use:   "send",
	Short: "Record a send event for a contact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		o, err := tracker.New(s).RecordOutreach(ctx, outreachContact, outreachChannel, outreachMsgType)
		if err != nil {
			return eris.Wrap(err, "record outreach")
		}

		zap.L().Info("outreach event recorded", zap.String("outreach_id", o.ID))
		return nil
	},
}

var outreachResponseCmd = &cobra.Command{
	Use:   "response",
	Short: "Attach a response to an outreach event",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := tracker.New(s).RecordResponse(ctx, responseID, responseText); err != nil {
			return eris.Wrap(err, "record response")
		}
		return nil
	},
}

func init() {
	outreachSendCmd.Flags().StringVar(&outreachContact, "contact", "", "contact ID (required)")
	outreachSendCmd.Flags().StringVar(&outreachChannel, "channel", "email", "channel: email or linkedin")
	outreachSendCmd.Flags().StringVar(&outreachMsgType, "type", "", "message type label")
	_ = outreachSendCmd.MarkFlagRequired("contact")

	outreachResponseCmd.Flags().StringVar(&responseID, "outreach", "", "outreach event ID (required)")
	outreachResponseCmd.Flags().StringVar(&responseText, "text", "", "response text")
	_ = outreachResponseCmd.MarkFlagRequired("outreach")

	outreachCmd.AddCommand(outreachSendCmd, outreachResponseCmd)
	rootCmd.AddCommand(outreachCmd)
}
