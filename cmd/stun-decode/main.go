// Command stun-decode reads a base64-encoded STUN message from the
// command line and prints its header and attributes.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stunwire/stun"
)

var password = flag.String("password", "", "verify MESSAGE-INTEGRITY with this password")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", "stun-decode")
		fmt.Fprintln(os.Stderr, "stun-decode AAEAHCESpEJML0JTQWsyVXkwcmGALwAWaHR0cDovL2xvY2FsaG9zdDozMDAwLwAA")
		fmt.Fprintln(os.Stderr, "First argument must be a base64.StdEncoding-encoded message")
		flag.PrintDefaults()
	}
	flag.Parse()
	data, err := base64.StdEncoding.DecodeString(flag.Arg(0))
	if err != nil {
		log.Fatalln("Unable to decode base64 value:", err)
	}
	var cred *stun.Credentials
	if *password != "" {
		cred = &stun.Credentials{Password: *password}
	}
	m, err := stun.Decode(data, cred)
	if err != nil {
		log.Fatalln("Unable to decode message:", err)
	}
	fmt.Println(m)
	for _, a := range m.Attributes {
		fmt.Printf("  %s: %v\n", a.Type(), a)
	}
}
