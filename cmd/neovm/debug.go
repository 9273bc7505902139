package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/chzyer/readline"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm"
)

func newDebugCommand() cli.Command {
	return cli.Command{
		Name:  "debug",
		Usage: "start an interactive, single-step debugger session",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config"},
			cli.Int64Flag{Name: "gas", Value: 10_00000000},
		},
		Action: debugAction,
	}
}

// session holds the state a debug REPL accumulates across commands: the
// chain it runs against and the Engine mid-stepping a loaded script, if any.
type session struct {
	chain ledger.Chain
	gas   util.Fixed8
	eng   *vm.Engine
}

func (s *session) load(code []byte) {
	s.eng = vm.NewEngine()
	_, err := s.eng.Load(code, s.chain, vm.Init{
		ScriptContainer: emptyContainer(),
		Trigger:         defaultTrigger(),
	}, s.gas, nil)
	if err != nil {
		fmt.Println("error:", err)
		s.eng = nil
		return
	}
	fmt.Printf("loaded %d bytes\n", len(code))
}

func (s *session) step(n int) {
	if s.eng == nil {
		fmt.Println("nothing loaded, use 'load' first")
		return
	}
	for i := 0; i < n; i++ {
		st, err := s.eng.StepOne()
		if err != nil {
			fmt.Println("fault:", err)
			return
		}
		if st == vm.HALT {
			fmt.Println("HALT")
			s.dumpStack()
			return
		}
	}
	s.printIP()
}

func (s *session) run() {
	if s.eng == nil {
		fmt.Println("nothing loaded, use 'load' first")
		return
	}
	for {
		st, err := s.eng.StepOne()
		if err != nil {
			fmt.Println("fault:", err)
			return
		}
		if st == vm.HALT {
			fmt.Println("HALT")
			s.dumpStack()
			return
		}
	}
}

func (s *session) printIP() {
	ctx := s.eng.Current()
	if ctx == nil {
		fmt.Println("HALT")
		return
	}
	fmt.Printf("pc=%d\n", ctx.PC)
}

func (s *session) dumpStack() {
	ctx := s.eng.Current()
	if ctx == nil {
		fmt.Println("no active frame")
		return
	}
	for i := 0; i < ctx.Stack.Len(); i++ {
		it, _ := ctx.Stack.Peek(i)
		fmt.Printf("  %d: %s\n", i, it)
	}
}

func debugAction(c *cli.Context) error {
	chain, closeChain, err := openChainFromContext(c)
	if err != nil {
		return fatalf("failed to open chain: %v", err)
	}
	defer closeChain()

	s := &session{chain: chain, gas: util.Fixed8(c.Int64("gas"))}

	rl, err := readline.NewEx(&readline.Config{Prompt: "neovm-debug> "})
	if err != nil {
		return fatalf("failed to start readline: %v", err)
	}
	defer rl.Close()

	fmt.Println("neovm debugger. Type 'help' for a command list, 'exit' to quit.")
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		args, err := shellquote.Split(line)
		if err != nil || len(args) == 0 {
			continue
		}
		if handleDebugCommand(s, args[0], args[1:]) {
			return nil
		}
	}
}

// handleDebugCommand runs one REPL command and reports whether the
// session should exit.
func handleDebugCommand(s *session, cmd string, args []string) bool {
	switch cmd {
	case "exit", "quit":
		fmt.Println("bye")
		return true
	case "help":
		fmt.Println("load <script>  - load a hex:/base64:/file script")
		fmt.Println("run            - run the loaded script to completion")
		fmt.Println("step [n]       - execute n opcodes (default 1)")
		fmt.Println("ip             - show the current program counter")
		fmt.Println("stack          - dump the evaluation stack")
		fmt.Println("height         - show the current chain height")
		fmt.Println("exit           - quit the debugger")
	case "load":
		if len(args) != 1 {
			fmt.Println("usage: load <script>")
			return false
		}
		code, err := loadScript(args[0])
		if err != nil {
			fmt.Println("error:", err)
			return false
		}
		s.load(code)
	case "height":
		fmt.Println(s.chain.Height())
	case "run":
		s.run()
	case "step":
		n := 1
		if len(args) == 1 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil {
				fmt.Println("error:", err)
				return false
			}
		}
		s.step(n)
	case "ip":
		if s.eng == nil {
			fmt.Println("nothing loaded")
			return false
		}
		s.printIP()
	case "stack":
		if s.eng == nil {
			fmt.Println("nothing loaded")
			return false
		}
		s.dumpStack()
	default:
		fmt.Printf("unknown command %q\n", cmd)
	}
	return false
}
