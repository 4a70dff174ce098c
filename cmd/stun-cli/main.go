// Command stun-cli builds and inspects STUN messages without touching
// the network: "encode" assembles a Binding message from flags and
// prints its wire bytes, "decode" parses wire bytes back.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/stunwire/stun"
)

const version = "0.1"

var software = stun.Software(fmt.Sprintf("stunwire/stun-cli %s", version))

func credentials(password string) *stun.Credentials {
	if password == "" {
		return nil
	}
	return &stun.Credentials{Password: password}
}

func encode(c *cli.Context) error {
	m := stun.NewBindingRequest().Add(software)
	if p := c.Uint("priority"); p != 0 {
		m.Add(stun.Priority(p))
	}
	if t := c.Uint64("controlling"); t != 0 {
		m.Add(stun.ICEControlling(t))
	}
	if username, realm := c.String("username"), c.String("realm"); realm != "" {
		m.AddLongTermCredentials(username, realm)
	} else if c.String("password") != "" {
		m.AddMessageIntegrity()
	}
	if c.Bool("fingerprint") {
		m.AddFingerprint()
	}
	raw, err := m.Encode(credentials(c.String("password")))
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"bytes": len(raw),
		"id":    base64.StdEncoding.EncodeToString(m.Header.TransactionID[:]),
	}).Info("encoded")
	fmt.Println(base64.StdEncoding.EncodeToString(raw))
	fmt.Println(hex.EncodeToString(raw))
	return nil
}

func decode(c *cli.Context) error {
	raw, err := base64.StdEncoding.DecodeString(c.Args().First())
	if err != nil {
		if raw, err = hex.DecodeString(c.Args().First()); err != nil {
			return fmt.Errorf("argument is neither base64 nor hex: %w", err)
		}
	}
	if !stun.IsMessage(raw) {
		logrus.Warn("bytes do not look like a STUN message")
	}
	m, err := stun.Decode(raw, credentials(c.String("password")))
	if err != nil {
		return err
	}
	fmt.Println(m)
	for _, a := range m.Attributes {
		fmt.Printf("  %s: %v\n", a.Type(), a)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "stun-cli"
	app.Usage = "STUN message codec tool"
	app.Version = version
	app.Commands = []cli.Command{
		{
			Name:   "encode",
			Usage:  "build a Binding request and print its wire bytes",
			Action: encode,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "password", Usage: "fill MESSAGE-INTEGRITY with this password"},
				cli.StringFlag{Name: "username", Usage: "USERNAME for long-term credentials"},
				cli.StringFlag{Name: "realm", Usage: "REALM for long-term credentials"},
				cli.UintFlag{Name: "priority", Usage: "PRIORITY attribute value"},
				cli.Uint64Flag{Name: "controlling", Usage: "ICE-CONTROLLING tiebreaker"},
				cli.BoolFlag{Name: "fingerprint", Usage: "append FINGERPRINT"},
			},
		},
		{
			Name:   "decode",
			Usage:  "decode a base64 or hex encoded message",
			Action: decode,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "password", Usage: "verify MESSAGE-INTEGRITY with this password"},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
