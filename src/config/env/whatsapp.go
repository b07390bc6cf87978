package env

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	MetaVerifyToken string
	WhatsAppToken   string
	PhoneNumberID   string
)

func loadWhatsAppEnv() {
	MetaVerifyToken = os.Getenv("VERIFY_TOKEN")
	WhatsAppToken = os.Getenv("WHATSAPP_TOKEN")
	PhoneNumberID = os.Getenv("PHONE_NUMBER_ID")

	requireEnv(MetaVerifyToken, "VERIFY_TOKEN")
	requireEnv(WhatsAppToken, "WHATSAPP_TOKEN")
	requireEnv(PhoneNumberID, "PHONE_NUMBER_ID")

	pterm.DefaultLogger.Info(
		fmt.Sprintf(
			"WhatsApp environment done with phone number id %s",
			PhoneNumberID,
		),
	)
}
