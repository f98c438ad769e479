package service

import (
	"context"
	"fmt"
	"strings"

	"carrental-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, res *domain.Reservation) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation is confirmed! Your confirmation code is %s.\n\nCar: %s\nPickup date: %s\nReturn date: %s\nTotal (incl. 10%% tax): $%.2f\n\nPlease bring your driver's license to our office on %s to pick up your %s.",
		res.CustomerName, res.ConfirmationCode, res.VehicleName, res.PickupDate, res.ReturnDate, res.TotalCost, res.PickupDate, res.VehicleName)
	return s.send(ctx, res.CustomerEmail, res.CustomerName, "Reservation Confirmed", body)
}

func (s *emailService) SendPickupReceipt(ctx context.Context, rt *domain.Rental) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYou have picked up your %s. Please return it by %s.\n\nRental #%d\nEnjoy your ride!",
		rt.CustomerName, rt.VehicleName, rt.ReturnDate, rt.ID)
	return s.send(ctx, rt.CustomerEmail, rt.CustomerName, "Pickup Receipt", body)
}

func (s *emailService) SendBillNotice(ctx context.Context, bill *domain.Bill) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nYour %s has been returned and inspected.\n\nBase cost: $%.2f\n", bill.CustomerName, bill.VehicleName, bill.BaseCost)
	fmt.Fprintf(&b, "Damages: $%.2f\n", bill.DamagesCost)
	fmt.Fprintf(&b, "Late fee (%d days): $%.2f\n", bill.DaysLate, bill.LateFee)
	fmt.Fprintf(&b, "Total due: $%.2f\n\nPlease visit our office to complete payment. Bill #%d.", bill.FinalAmount, bill.ID)
	return s.send(ctx, bill.CustomerEmail, bill.CustomerName, "Your Rental Bill", b.String())
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, bill *domain.Bill) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nPayment of $%.2f was processed successfully for bill #%d.\nTransaction reference: %s\n\nThank you for renting with us!",
		bill.CustomerName, bill.FinalAmount, bill.ID, bill.TransactionRef)
	return s.send(ctx, bill.CustomerEmail, bill.CustomerName, "Payment Receipt", body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, rt *domain.Rental) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nOur records show your %s was due back on %s. Late days are charged at $%.2f per day.\n\nPlease return the vehicle to our office as soon as possible.",
		rt.CustomerName, rt.VehicleName, rt.ReturnDate, rt.PricePerDay)
	return s.send(ctx, rt.CustomerEmail, rt.CustomerName, "Vehicle Return Overdue", body)
}

func (s *emailService) SendUnpaidBillReminder(ctx context.Context, bill *domain.Bill) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nBill #%d for your %s rental is still unpaid. Amount due: $%.2f.\n\nPlease visit our office to complete payment.",
		bill.CustomerName, bill.ID, bill.VehicleName, bill.FinalAmount)
	return s.send(ctx, bill.CustomerEmail, bill.CustomerName, "Payment Reminder", body)
}
