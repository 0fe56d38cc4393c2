package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gawindx/goihomma/common"
	"github.com/gawindx/goihomma/protocol/packet"
)

var (
	cmdOn = &cobra.Command{
		Use:               `on`,
		Short:             `turn the bulb(s) on`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run: func(c *cobra.Command, args []string) {
			if !group().TurnOn() {
				logger.Fatalln(`Failed turning on`)
			}
		},
	}

	cmdOff = &cobra.Command{
		Use:               `off`,
		Short:             `turn the bulb(s) off`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run: func(c *cobra.Command, args []string) {
			if !group().TurnOff() {
				logger.Fatalln(`Failed turning off`)
			}
		},
	}

	cmdBrightness = &cobra.Command{
		Use:               `brightness <0-255>`,
		Short:             `set the bulb(s) brightness`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               runBrightness,
	}

	cmdTemp = &cobra.Command{
		Use:               `temp <2700-6500>`,
		Short:             `set the bulb(s) color temperature in Kelvin`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               runTemp,
	}

	cmdColor = &cobra.Command{
		Use:               `color <r> <g> <b>`,
		Short:             `set the bulb(s) RGB color`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               runColor,
	}

	cmdEffect = &cobra.Command{
		Use:               `effect <name>`,
		Short:             `start a named effect on the bulb(s)`,
		Long:              `start a named effect on the bulb(s), one of: ` + strings.Join(packet.EffectNames(), `, `),
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               runEffect,
	}

	cmdState = &cobra.Command{
		Use:               `state`,
		Short:             `print the bulb(s) state`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               runState,
	}

	cmdPing = &cobra.Command{
		Use:               `ping`,
		Short:             `probe the bulb(s) for liveness`,
		PersistentPreRun:  setupClient,
		PersistentPostRun: closeClient,
		Run:               runPing,
	}
)

func runBrightness(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		logger.Fatalln(`Missing brightness`)
	}
	brightness, err := strconv.Atoi(args[0])
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Invalid brightness`)
	}
	if !group().SetBrightness(brightness) {
		logger.Fatalln(`Failed setting brightness`)
	}
}

func runTemp(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		logger.Fatalln(`Missing temperature`)
	}
	kelvin, err := strconv.Atoi(args[0])
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`Invalid temperature`)
	}
	if !group().SetTemperature(kelvin) {
		logger.Fatalln(`Failed setting temperature`)
	}
}

func runColor(c *cobra.Command, args []string) {
	if len(args) != 3 {
		_ = c.Usage()
		logger.Fatalln(`Color requires r, g and b components`)
	}
	components := make([]uint8, 3)
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil {
			logger.WithField(`error`, err).Fatalln(`Invalid color component`)
		}
		components[i] = uint8(v)
	}
	color := common.RGB{R: components[0], G: components[1], B: components[2]}
	if !group().SetColor(color) {
		logger.Fatalln(`Failed setting color`)
	}
}

func runEffect(c *cobra.Command, args []string) {
	if len(args) != 1 {
		_ = c.Usage()
		logger.Fatalln(`Missing effect name`)
	}
	code, ok := packet.EffectCode(args[0])
	if !ok {
		logger.WithField(`effect`, args[0]).Fatalln(`Unknown effect`)
	}
	if !group().SetEffect(code, args[0]) {
		logger.Fatalln(`Failed setting effect`)
	}
}

func runState(c *cobra.Command, args []string) {
	devices, err := client.GetDevices()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`No devices`)
	}
	for _, dev := range devices {
		st := dev.State()
		fmt.Printf("%s: available=%v on=%v brightness=%d kelvin=%d rgb=(%d,%d,%d) effect=%q\n",
			dev.IP(), st.Available, st.On, st.Brightness, st.Kelvin, st.RGB.R, st.RGB.G, st.RGB.B, st.Effect)
	}
}

func runPing(c *cobra.Command, args []string) {
	devices, err := client.GetDevices()
	if err != nil {
		logger.WithField(`error`, err).Fatalln(`No devices`)
	}
	for _, dev := range devices {
		logger.WithFields(logrus.Fields{
			`ip`:        dev.IP(),
			`available`: dev.IsAvailable(),
		}).Infoln(`Probe result`)
	}
}
