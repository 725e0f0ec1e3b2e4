/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	siphash "github.com/flanglet/siphash-go"
	flag "github.com/spf13/pflag"
)

const (
	_SIPHASH_VERSION = "1.0"
	_APP_HEADER      = "SipHash " + _SIPHASH_VERSION + " (c) Frederic Langlet"
	_STDIN_NAME      = "-"
	_HEX_KEY_PREFIX  = "hex:"
)

var (
	mutex sync.Mutex
	log   = Printer{os: bufio.NewWriter(os.Stdout)}
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("siphash", flag.ContinueOnError)
	keyArg := flags.String("key", "", "16 byte key, either ASCII or '"+_HEX_KEY_PREFIX+"' followed by 32 hexadecimal characters")
	inputName := flags.String("input", _STDIN_NAME, "input file to hash ('"+_STDIN_NAME+"' for stdin)")
	roundsC := flags.Int("rounds-c", 2, "compression rounds per message block")
	roundsD := flags.Int("rounds-d", 4, "finalization rounds")
	hexOut := flags.Bool("hex", false, "print the digest as hexadecimal text instead of a decimal integer")
	lower := flags.Bool("lower", false, "use lower case hexadecimal letters")
	noPad := flags.Bool("no-pad", false, "do not zero pad hexadecimal output to 16 characters")
	verbose := flags.Bool("verbose", false, "print the application header and the active backend")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}

		fmt.Fprintf(os.Stderr, "%v\n", err)
		return siphash.ERR_MISSING_PARAM
	}

	log.Println(_APP_HEADER, *verbose)

	if len(*keyArg) == 0 {
		fmt.Fprintln(os.Stderr, "A --key is required")
		return siphash.ERR_MISSING_PARAM
	}

	key, status := parseKey(*keyArg)

	if status != 0 {
		return status
	}

	hasher, err := siphash.NewHasherWithRounds(key, *roundsC, *roundsD)

	if err != nil {
		return printError(err)
	}

	message, status := readInput(*inputName)

	if status != 0 {
		return status
	}

	backend := "portable"

	if siphash.IsNativeBackendActive() == true {
		backend = "native"
	}

	log.Println("Using "+backend+" backend", *verbose)

	if *hexOut == true {
		opts := siphash.HexOptions{NoPadding: *noPad}

		if *lower == true {
			opts.Case = siphash.HexLower
		}

		log.Println(hasher.HashHex(message, opts), true)
	} else {
		log.Println(strconv.FormatUint(hasher.Hash(message), 10), true)
	}

	return 0
}

func parseKey(arg string) ([]byte, int) {
	if strings.HasPrefix(arg, _HEX_KEY_PREFIX) == true {
		key, err := hex.DecodeString(arg[len(_HEX_KEY_PREFIX):])

		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid hexadecimal key: %v\n", err)
			return nil, siphash.ERR_INVALID_KEY
		}

		return key, 0
	}

	return []byte(arg), 0
}

func readInput(inputName string) ([]byte, int) {
	if inputName == _STDIN_NAME {
		message, err := io.ReadAll(os.Stdin)

		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read stdin: %v\n", err)
			return nil, siphash.ERR_READ_FILE
		}

		return message, 0
	}

	input, err := os.Open(inputName)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot open input file '%s': %v\n", inputName, err)
		return nil, siphash.ERR_OPEN_FILE
	}

	defer input.Close()
	message, err := io.ReadAll(input)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot read input file '%s': %v\n", inputName, err)
		return nil, siphash.ERR_READ_FILE
	}

	return message, 0
}

func printError(err error) int {
	if herr, isHashErr := err.(*siphash.HashError); isHashErr == true {
		fmt.Fprintf(os.Stderr, "%s\n", herr.Message())
		return herr.ErrorCode()
	}

	fmt.Fprintf(os.Stderr, "%v\n", err)
	return siphash.ERR_UNKNOWN
}

// Printer a buffered printer (required in concurrent code)
type Printer struct {
	os *bufio.Writer
}

// Println concurrently safe version (order wise) of Println
func (this *Printer) Println(msg string, printFlag bool) {
	if printFlag == true {
		mutex.Lock()

		// Best effort, ignore error
		if w, _ := this.os.Write([]byte(msg + "\n")); w > 0 {
			_ = this.os.Flush()
		}

		mutex.Unlock()
	}
}
