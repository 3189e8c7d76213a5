// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"autocheck-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotificationService tells customers their vehicle is ready for pickup.
// Messages go out synchronously when an order is completed; a delivery
// failure is logged and never fails the status change itself.
type NotificationService struct {
	client       *twilio.RestClient
	from         string
	whatsappFrom string
	enabled      bool
}

func NewNotificationService() *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		enabled: accountSid != "" && authToken != "",
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from:         os.Getenv("TWILIO_PHONE_NUMBER"),
		whatsappFrom: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}
}

func (s *NotificationService) NotifyOrderCompleted(order *models.ServiceOrder, vehicle *models.Vehicle) {
	if !s.enabled {
		return
	}

	message := fmt.Sprintf(
		"Olá %s, seu veículo %s %s (placa %s) está pronto para retirada! Ordem %s.",
		vehicle.CustomerName, vehicle.Brand, vehicle.Model, vehicle.Plate, order.OrderNumber,
	)

	// Use WhatsApp if phone is in E.164 format, else plain SMS
	channel := "sms"
	params := &twilioApi.CreateMessageParams{}
	if strings.HasPrefix(vehicle.CustomerPhone, "+") && s.whatsappFrom != "" {
		channel = "whatsapp"
		params.SetTo("whatsapp:" + vehicle.CustomerPhone)
		params.SetFrom("whatsapp:" + s.whatsappFrom)
	} else {
		params.SetTo(vehicle.CustomerPhone)
		params.SetFrom(s.from)
	}
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send pickup notification to %s: %v", vehicle.CustomerPhone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Pickup notification sent to %s via %s, SID: %s", vehicle.CustomerPhone, channel, *resp.Sid)
	} else {
		log.Printf("Pickup notification sent to %s via %s, but no SID returned", vehicle.CustomerPhone, channel)
	}
}
