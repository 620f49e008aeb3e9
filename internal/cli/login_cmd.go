package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AGiXT/go-sdk/agixt"
	"github.com/AGiXT/go-sdk/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

func newLoginCmd() *cobra.Command {
	var otp string
	var oauthProvider string

	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Authenticate against the server and store the token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if oauthProvider != "" {
				return oauthLogin(cmd, client, oauthProvider)
			}

			if len(args) == 0 {
				return fmt.Errorf("email required (or use --oauth)")
			}
			email := args[0]

			if otp == "" {
				otp = prompt("One-time password: ")
			}

			token, err := client.Auth.Login(cmd.Context(), email, otp)
			if err != nil {
				return err
			}

			cfg.Server.APIKey = token
			if err := config.Save(paths.Config, cfg); err != nil {
				return err
			}
			fmt.Println("Logged in. Token saved to", paths.Config)
			return nil
		},
	}

	cmd.Flags().StringVar(&otp, "otp", "", "one-time password from your authenticator app")
	cmd.Flags().StringVar(&oauthProvider, "oauth", "", "log in through an OAuth2 provider (google, github, microsoft)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Register a new user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			otpURI, err := client.Auth.Register(cmd.Context(), args[0], firstName, lastName)
			if err != nil {
				return err
			}

			fmt.Println("Registered. Add this TOTP secret to your authenticator app:")
			fmt.Println(otpURI)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	return cmd
}

// oauthLogin walks the manual authorization-code flow: print the consent
// URL, read the code back from the terminal, then exchange it server-side.
func oauthLogin(cmd *cobra.Command, client *agixt.Client, provider string) error {
	pc, ok := cfg.OAuth[provider]
	if !ok || pc.ClientID == "" {
		return fmt.Errorf("oauth provider %q is not configured (set oauth.%s.clientId)", provider, provider)
	}

	endpoint, err := oauthEndpoint(provider)
	if err != nil {
		return err
	}

	redirectURL := pc.RedirectURL
	if redirectURL == "" {
		redirectURL = cfg.Server.URL
	}

	oc := oauth2.Config{
		ClientID:    pc.ClientID,
		Endpoint:    endpoint,
		RedirectURL: redirectURL,
		Scopes:      pc.Scopes,
	}

	url := oc.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Println("Open this URL in your browser and authorize:")
	fmt.Println(url)

	code := prompt("Authorization code: ")
	if code == "" {
		return fmt.Errorf("no authorization code given")
	}

	if _, err := client.Auth.OAuth2Login(cmd.Context(), provider, code, redirectURL); err != nil {
		return err
	}
	token := client.Token()
	if token == "" {
		return fmt.Errorf("server did not issue a token")
	}

	cfg.Server.APIKey = token
	if err := config.Save(paths.Config, cfg); err != nil {
		return err
	}
	fmt.Println("Logged in via", provider+". Token saved to", paths.Config)
	return nil
}

func oauthEndpoint(provider string) (oauth2.Endpoint, error) {
	switch provider {
	case "google":
		return endpoints.Google, nil
	case "github":
		return endpoints.GitHub, nil
	case "microsoft":
		return endpoints.Microsoft, nil
	default:
		return oauth2.Endpoint{}, fmt.Errorf("unknown oauth provider %q", provider)
	}
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
