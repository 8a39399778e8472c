package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var callbackURL string

// authorizeCmd represents the authorize command
var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Run the OAuth authorization flow for your FatSecret profile",
	Long: `Runs the three-legged OAuth handshake. You will be shown a URL to open in
a browser; after granting access, FatSecret displays a verifier PIN. Enter
the PIN here to complete the exchange, then store the printed access token
pair in your config file to keep the session.`,
	RunE: runAuthorize,
}

func init() {
	rootCmd.AddCommand(authorizeCmd)

	authorizeCmd.Flags().StringVar(&callbackURL, "callback", "", "absolute callback URL (default is the PIN-based flow)")
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	authURL, err := client.BeginAuthorization(callbackURL)
	if err != nil {
		return fmt.Errorf("failed to start authorization: %w", err)
	}

	fmt.Println("Open the following URL in a browser and grant access:")
	fmt.Println()
	fmt.Printf("  %s\n", authURL)
	fmt.Println()
	fmt.Print("Enter the verifier PIN: ")

	reader := bufio.NewReader(os.Stdin)
	verifier, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read verifier: %w", err)
	}
	verifier = strings.TrimSpace(verifier)
	if verifier == "" {
		return fmt.Errorf("no verifier entered")
	}

	pair, err := client.CompleteAuthorization(verifier)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	fmt.Println("\n✓ Authorization successful!")
	fmt.Println("\nAdd the following to your config file to keep the session:")
	fmt.Println()
	fmt.Println("fatsecret:")
	fmt.Printf("  access_token: %s\n", pair.Token)
	fmt.Printf("  access_secret: %s\n", pair.Secret)

	return nil
}
