// gewecli is a thin command-line surface over the gewe client library.
// It prints the gateway's raw JSON response for every command.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/weflow-hq/gewe-go/internal/config"
	"github.com/weflow-hq/gewe-go/internal/logger"
	"github.com/weflow-hq/gewe-go/pkg/gewe"
)

const usage = `usage: gewecli <command> [args]

commands:
  contacts list [cache]          fetch the contact list (optionally the cached view)
  contacts search <keyword>      search a contact by phone number or alias
  contacts brief <wxid>...       brief info for one or more contacts
  contacts delete <wxid>         delete a friend
  send text <to> <content>       send a text message (to = wxid or chatroom id)
  login qr                       request a login QR code
  login check <uuid>             poll login state for a QR code
  login online                   check whether the session is alive
  callback set <url>             register the push callback URL

configuration comes from configs/.env and environment variables
(GEWE_BASE_URL, GEWE_TOKEN, GEWE_APP_ID).`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gewecli: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.GeweToken == "" {
		return fmt.Errorf("gewe_token is not configured")
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	client := gewe.NewClient(gewe.Config{
		BaseURL: cfg.GeweBaseURL,
		Token:   cfg.GeweToken,
		AppID:   cfg.GeweAppID,
		Timeout: cfg.HTTPTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resp, err := dispatch(ctx, client, args)
	if err != nil {
		return err
	}
	return printResponse(resp)
}

func dispatch(ctx context.Context, client *gewe.Client, args []string) (map[string]any, error) {
	switch args[0] {
	case "contacts":
		return dispatchContacts(ctx, client, args[1:])
	case "send":
		return dispatchSend(ctx, client, args[1:])
	case "login":
		return dispatchLogin(ctx, client, args[1:])
	case "callback":
		if len(args) == 3 && args[1] == "set" {
			return client.SetCallback(ctx, args[2])
		}
	case "help", "-h", "--help":
		fmt.Println(usage)
		return map[string]any{}, nil
	}
	return nil, fmt.Errorf("unknown command %q (try: gewecli help)", args[0])
}

func dispatchContacts(ctx context.Context, client *gewe.Client, args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("contacts: missing subcommand")
	}
	switch args[0] {
	case "list":
		if len(args) == 2 && args[1] == "cache" {
			return client.FetchContactsListCache(ctx)
		}
		return client.FetchContactsList(ctx)
	case "search":
		if len(args) != 2 {
			return nil, fmt.Errorf("contacts search: want exactly one keyword")
		}
		return client.SearchContact(ctx, args[1])
	case "brief":
		wxids, err := parseWxids(args[1:])
		if err != nil {
			return nil, err
		}
		return client.GetBriefInfoList(ctx, wxids)
	case "delete":
		if len(args) != 2 {
			return nil, fmt.Errorf("contacts delete: want exactly one wxid")
		}
		wxid, err := gewe.ParseWxid(args[1])
		if err != nil {
			return nil, err
		}
		return client.DeleteFriend(ctx, wxid)
	}
	return nil, fmt.Errorf("unknown contacts subcommand %q", args[0])
}

func dispatchSend(ctx context.Context, client *gewe.Client, args []string) (map[string]any, error) {
	if len(args) == 3 && args[0] == "text" {
		return client.PostText(ctx, args[1], args[2], nil)
	}
	return nil, fmt.Errorf("send: want `send text <to> <content>`")
}

func dispatchLogin(ctx context.Context, client *gewe.Client, args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("login: missing subcommand")
	}
	switch args[0] {
	case "qr":
		return client.GetLoginQRCode(ctx)
	case "check":
		if len(args) != 2 {
			return nil, fmt.Errorf("login check: want exactly one uuid")
		}
		return client.CheckLogin(ctx, args[1], "")
	case "online":
		return client.CheckOnline(ctx)
	}
	return nil, fmt.Errorf("unknown login subcommand %q", args[0])
}

func parseWxids(args []string) ([]gewe.Wxid, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("want at least one wxid")
	}
	wxids := make([]gewe.Wxid, 0, len(args))
	for _, a := range args {
		w, err := gewe.ParseWxid(a)
		if err != nil {
			return nil, err
		}
		wxids = append(wxids, w)
	}
	return wxids, nil
}

func printResponse(resp map[string]any) error {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("render response: %w", err)
	}
	fmt.Println(string(out))

	if ret, ok := gewe.RetCode(resp); ok && ret != 200 {
		return fmt.Errorf("gateway returned ret=%d", ret)
	}
	return nil
}
