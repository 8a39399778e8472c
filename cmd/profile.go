package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileUserID string

// profileCmd represents the profile command group
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect or create FatSecret profiles",
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show status information for the authorized profile",
	RunE:  runProfileGet,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new profile and print its auth token pair",
	Long: `Creates a new profile under your application. The printed token pair is
persisted indefinitely by FatSecret and can be stored in the config file to
operate on that profile. With --user-id the pair can instead be retrieved
later via 'profile auth'.`,
	RunE: runProfileCreate,
}

var profileAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Retrieve the auth token pair for a profile created with --user-id",
	RunE:  runProfileAuth,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileAuthCmd)

	profileCreateCmd.Flags().StringVar(&profileUserID, "user-id", "", "caller-chosen ID for the new profile")
	profileAuthCmd.Flags().StringVar(&profileUserID, "user-id", "", "ID supplied at profile creation")
	profileAuthCmd.MarkFlagRequired("user-id")
}

func runProfileGet(cmd *cobra.Command, args []string) error {
	if err := requireAuthorized(); err != nil {
		return err
	}

	profile, err := client.ProfileGet(context.Background())
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Println("No profile information returned.")
		return nil
	}
	printRecord(profile)
	return nil
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	pair, err := client.ProfileCreate(context.Background(), profileUserID)
	if err != nil {
		return err
	}

	if pair.Token == "" {
		fmt.Println("Profile created; retrieve its tokens with 'fattrack profile auth'.")
		return nil
	}

	fmt.Println("Profile created. Store this token pair to access it:")
	fmt.Printf("  access_token: %s\n", pair.Token)
	fmt.Printf("  access_secret: %s\n", pair.Secret)
	return nil
}

func runProfileAuth(cmd *cobra.Command, args []string) error {
	pair, err := client.ProfileGetAuth(context.Background(), profileUserID)
	if err != nil {
		return err
	}

	if pair.Token == "" {
		fmt.Println("No auth tokens returned for that user ID.")
		return nil
	}

	fmt.Printf("  access_token: %s\n", pair.Token)
	fmt.Printf("  access_secret: %s\n", pair.Secret)
	return nil
}
