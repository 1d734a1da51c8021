package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	bookingCmd "github.com/tropics/poolscape/booking/cmd"
	cartCmd "github.com/tropics/poolscape/cart/cmd"
	catalogCmd "github.com/tropics/poolscape/catalog/cmd"
	"github.com/tropics/poolscape/internal/constants"
	"github.com/tropics/poolscape/internal/log"
	orderCmd "github.com/tropics/poolscape/order/cmd"
	userCmd "github.com/tropics/poolscape/user/cmd"
)

func Start() {
	logger := log.InitLogger("/var/log/poolscape.log").
		With().
		Str(log.KeyAppName, constants.AppMainStorefront).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{}
	commands := []*cobra.Command{
		{
			Use:   "booking",
			Short: "Run booking service",
			Run: func(cmd *cobra.Command, args []string) {
				bookingCmd.RunBookingService(cmd.Context())
			},
		},
		{
			Use:   "cart",
			Short: "Run cart service",
			Run: func(cmd *cobra.Command, args []string) {
				cartCmd.RunCartService(cmd.Context())
			},
		},
		{
			Use:   "catalog",
			Short: "Run catalog service",
			Run: func(cmd *cobra.Command, args []string) {
				catalogCmd.RunCatalogService(cmd.Context())
			},
		},
		{
			Use:   "order",
			Short: "Run order service",
			Run: func(cmd *cobra.Command, args []string) {
				orderCmd.RunOrderService(cmd.Context())
			},
		},
		{
			Use:   "user",
			Short: "Run user service",
			Run: func(cmd *cobra.Command, args []string) {
				userCmd.RunUserService(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
