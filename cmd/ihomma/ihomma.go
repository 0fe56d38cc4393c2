// Command ihomma allows performing basic operations on iHomma SmartLight
// bulbs over the LAN
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gawindx/goihomma"
)

var (
	client *goihomma.Client

	flagIPs      []string
	flagLogLevel string

	logger = logrus.New()
	app    = &cobra.Command{
		Use: `ihomma`,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			setLogger()
		},
	}
)

func init() {
	goihomma.SetLogger(logger)

	app.PersistentFlags().StringSliceVarP(&flagIPs, `ip`, `i`, nil, `bulb IP address, repeatable for a group`)
	app.PersistentFlags().StringVarP(&flagLogLevel, `log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)

	app.AddCommand(cmdOn)
	app.AddCommand(cmdOff)
	app.AddCommand(cmdBrightness)
	app.AddCommand(cmdTemp)
	app.AddCommand(cmdColor)
	app.AddCommand(cmdEffect)
	app.AddCommand(cmdState)
	app.AddCommand(cmdPing)
}

func main() {
	_ = app.Execute()
}

func setupClient(c *cobra.Command, args []string) {
	if len(flagIPs) == 0 {
		logger.Fatalln(`At least one --ip is required`)
	}

	client = goihomma.NewClient()
	for _, ip := range flagIPs {
		if _, err := client.AddDevice(ip); err != nil {
			logger.WithFields(logrus.Fields{
				`ip`:    ip,
				`error`: err,
			}).Fatalln(`Failed adding device`)
		}
	}
}

func closeClient(c *cobra.Command, args []string) {
	if err := client.Close(); err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed closing client`)
	}
}

// group returns a Group over every configured bulb, so single-bulb and
// multi-bulb invocations share one code path.
func group() *goihomma.Group {
	g, err := client.NewGroup(flagIPs...)
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Failed building group`)
	}
	return g
}

func setLogger() {
	switch flagLogLevel {
	case `debug`:
		logger.Level = logrus.DebugLevel
	case `info`:
		logger.Level = logrus.InfoLevel
	case `warn`:
		logger.Level = logrus.WarnLevel
	case `error`:
		logger.Level = logrus.ErrorLevel
	default:
		logger.Level = logrus.InfoLevel
	}
}
