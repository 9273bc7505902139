package main

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/urfave/cli"

	"github.com/nspcc-dev/neo-go-classicvm/pkg/core/ledger"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/util"
	"github.com/nspcc-dev/neo-go-classicvm/pkg/vm"
)

func newServeCommand() cli.Command {
	return cli.Command{
		Name:  "serve",
		Usage: "serve script execution requests over a websocket",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "config"},
			cli.StringFlag{Name: "address", Value: ":20332"},
		},
		Action: serveAction,
	}
}

// execRequest is a single script to run, as sent over the websocket
// connection by a client one JSON message at a time.
type execRequest struct {
	Script string `json:"script"` // hex-encoded
	Gas    int64  `json:"gas"`
}

// execResponse is the result of running one execRequest.
type execResponse struct {
	State string   `json:"state"`
	Error string   `json:"error,omitempty"`
	Stack []string `json:"stack,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func serveAction(c *cli.Context) error {
	chain, closeChain, err := openChainFromContext(c)
	if err != nil {
		return fatalf("failed to open chain: %v", err)
	}
	defer closeChain()

	mux := http.NewServeMux()
	mux.HandleFunc("/exec", execHandler(chain))

	addr := c.String("address")
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func execHandler(chain ledger.Chain) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade failed:", err)
			return
		}
		defer conn.Close()

		for {
			var req execRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			resp := runOne(chain, req)
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}
}

func runOne(chain ledger.Chain, req execRequest) execResponse {
	code, err := loadScript("hex:" + req.Script)
	if err != nil {
		return execResponse{State: "FAULT", Error: err.Error()}
	}
	gas := req.Gas
	if gas == 0 {
		gas = 10_00000000
	}

	e := vm.NewEngine()
	ctx, st, err := e.ExecuteScript(code, chain, vm.Init{
		ScriptContainer: emptyContainer(),
		Trigger:         defaultTrigger(),
	}, util.Fixed8(gas), nil)

	resp := execResponse{State: st.String()}
	if err != nil {
		resp.Error = err.Error()
	}
	if ctx != nil {
		for i := 0; i < ctx.Stack.Len(); i++ {
			it, _ := ctx.Stack.Peek(i)
			resp.Stack = append(resp.Stack, it.String())
		}
	}
	return resp
}
