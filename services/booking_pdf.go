package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// BookingHistoryPDF renders a booking list as an A4 PDF. counterparty names
// the column holding the other party: "Provider" for customers, "Customer"
// for providers.
func BookingHistoryPDF(owner, counterparty string, bookings []models.Booking, generatedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("BOOKING HISTORY", props.Text{
				Size:  20,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(8, func() {
		m.Col(6, func() {
			m.Text(owner, props.Text{
				Size:  11,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generated %s", generatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	header := []string{"#", "Service", counterparty, "Date", "Status", "Amount"}
	rows := make([][]string, 0, len(bookings))
	var paid float64
	for _, b := range bookings {
		rows = append(rows, []string{
			fmt.Sprint(b.ID),
			b.Service,
			counterpartyName(b, counterparty),
			b.Date,
			fmt.Sprintf("%s / %s", b.Status, b.PaymentStatus),
			fmt.Sprintf("Tk %.2f", b.Amount),
		})
		if b.PaymentStatus == models.PaymentPaid {
			paid += b.Amount
		}
	}

	if len(rows) == 0 {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text("No bookings yet.", props.Text{Size: 10, Color: mediumGray})
			})
		})
	} else {
		m.TableList(header, rows, props.TableList{
			HeaderProp:         props.TableListContent{Size: 8, GridSizes: []uint{1, 3, 3, 2, 2, 1}},
			ContentProp:        props.TableListContent{Size: 8, GridSizes: []uint{1, 3, 3, 2, 2, 1}},
			Align:              consts.Left,
			HeaderContentSpace: 2,
			Line:               true,
		})
	}

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Total paid: Tk %.2f across %d bookings", paid, len(bookings)), props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
				Top:   4,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render booking pdf: %w", err)
	}
	return &buf, nil
}

func counterpartyName(b models.Booking, counterparty string) string {
	if counterparty == "Customer" {
		return b.Customer
	}
	return b.Provider
}
