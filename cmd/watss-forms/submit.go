package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincentbai/watss-forms/internal/relay"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

var (
	submitName   string
	submitEmail  string
	submitEvents []string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Save one submission to local storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLocalVariant(cfg, "submit"); err != nil {
			return err
		}
		ctx := cmd.Context()
		slots, err := openSlots(ctx, cfg)
		if err != nil {
			return err
		}
		defer slots.Close()

		list, err := newStore(slots, cfg, logger).Append(ctx, submitName, submitEmail, submitEvents)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Thank you for joining us, %s! Your information has been saved.\n", list[len(list)-1].Name)
		fmt.Fprintln(cmd.OutOrStdout(), submissions.StatusOf(len(list)).Label)
		return nil
	},
}

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Send one submission to the configured form-relay endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RelayURL == "" {
			return fmt.Errorf("no relay endpoint configured (set WATSS_RELAY_URL)")
		}
		name, email, err := submissions.Validate(submitName, submitEmail)
		if err != nil {
			return err
		}
		err = newRelayClient(cfg, logger).Submit(cmd.Context(), relay.Fields{Name: name, Email: email, Events: submitEvents})
		if err != nil {
			return fmt.Errorf("%s", relay.UserMessage(err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Thanks for your submission!")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{submitCmd, relayCmd} {
		cmd.Flags().StringVar(&submitName, "name", "", "name (required)")
		cmd.Flags().StringVar(&submitEmail, "email", "", "email address (required)")
		cmd.Flags().StringArrayVar(&submitEvents, "event", nil, "selected event, repeatable")
	}
}
