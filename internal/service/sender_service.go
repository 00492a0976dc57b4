package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"fitclub/internal/entities"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendBookingEmail(booking entities.BookingResponse, status string) {
	emailData := entities.BookingEmailData{
		ClientName:  booking.ClientName,
		BookingCode: booking.Code,
		TrainerName: booking.TrainerName,
		SessionType: booking.Type,
		Date:        booking.Date,
		StartTime:   booking.StartTime,
		EndTime:     booking.EndTime,
		Status:      status,
		CurrentYear: time.Now().Year(),
	}

	emailSubject := fmt.Sprintf("Your FitClub session is %s - Code: %s", status, emailData.BookingCode)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour training session at FitClub is %s.\n\n"+
			"Session Details:\n"+
			"Booking Code: %s\n"+
			"Trainer: %s\n"+
			"Session Type: %s\n"+
			"Date: %s\n"+
			"Time: %s - %s\n\n"+
			"Thank you for training with FitClub.\n\n"+
			"FitClub. All rights reserved.",
		emailData.ClientName, status, emailData.BookingCode, emailData.TrainerName,
		emailData.SessionType, emailData.Date, emailData.StartTime, emailData.EndTime,
	)

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: Error parsing email HTML template (%s): %v", tmplPath, err)
	}

	var htmlBody string
	if tmpl != nil {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: Error executing email HTML template for booking %s: %v", emailData.BookingCode, err)
		}
		htmlBody = htmlBodyBuffer.String()
	}

	go func(toEmail, clientName, subject, plainBody, htmlBodyContent string) {
		errEmail := SendEmailWithSendGrid(toEmail, clientName, subject, plainBody, htmlBodyContent)
		if errEmail != nil {
			log.Printf("ALERT (async): Email send failed for booking %s: %v", emailData.BookingCode, errEmail)
		}
	}(booking.ClientEmail, emailData.ClientName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendBookingSMS(booking entities.BookingResponse, status string) {
	if booking.ClientPhone == "" {
		return
	}

	smsMessage := fmt.Sprintf("FitClub: Your session %s is %s!\n%s %s with %s.\nMore details in your email.",
		booking.Code, status, booking.Date, booking.StartTime, booking.TrainerName)

	errSMS := SendSMS(booking.ClientPhone, smsMessage)
	if errSMS != nil {
		log.Printf("ALERT: Booking %s was updated, but sending the SMS to %s failed: %v",
			booking.Code, booking.ClientPhone, errSMS)
	}
}
