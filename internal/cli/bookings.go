package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"
	"travelbook/internal/services"
	"travelbook/internal/utils"

	"github.com/spf13/cobra"
)

func NewBookingsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect and manage trip bookings",
	}
	cmd.AddCommand(newBookingsListCommand(opts))
	cmd.AddCommand(newBookingsCancelCommand(opts))
	return cmd
}

func (o *RootOptions) bookingService() (services.BookingService, error) {
	db, err := o.open()
	if err != nil {
		return services.BookingService{}, err
	}
	return services.BookingService{
		Bookings:  repositories.BookingRepository{DB: db},
		RequestID: "cli",
	}, nil
}

type bookingRow struct {
	ID          int64  `json:"id"`
	User        int64  `json:"user_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Destination string `json:"destination"`
	Depart      string `json:"depart_date,omitempty"`
	Return      string `json:"return_date,omitempty"`
	Total       int64  `json:"total_amount"`
	Status      string `json:"status"`
	Payment     string `json:"payment_method,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func toRow(b models.TripBooking) bookingRow {
	return bookingRow{
		ID:          b.ID,
		User:        b.UserID,
		FullName:    b.FullName,
		Email:       b.Email,
		Destination: b.Destination,
		Depart:      utils.FormatOptionalDate(b.DepartDate),
		Return:      utils.FormatOptionalDate(b.ReturnDate),
		Total:       b.TotalAmount(),
		Status:      string(b.Status),
		Payment:     b.PaymentMethod,
		CreatedAt:   utils.FormatDateTime(b.CreatedAt),
	}
}

func newBookingsListCommand(opts *RootOptions) *cobra.Command {
	var (
		status string
		search string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings, newest first",
		Long: `List bookings across all users.

Examples:
  travelbook bookings list --status pending
  travelbook bookings list --search paris --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.bookingService()
			if err != nil {
				return err
			}
			list, err := svc.List(cmd.Context(), models.BookingFilter{
				Status: models.BookingStatus(status),
				Search: search,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			rows := make([]bookingRow, 0, len(list))
			for _, b := range list {
				rows = append(rows, toRow(b))
			}
			if opts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return writeBookingTable(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only bookings in this status (pending|confirmed|cancelled)")
	cmd.Flags().StringVar(&search, "search", "", "match name, email or destination")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows, 0 for all")
	return cmd
}

func writeBookingTable(out io.Writer, rows []bookingRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(out, "no bookings")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESTINATION\tDEPART\tTOTAL\tSTATUS\tCREATED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.FullName, r.Destination, utils.FirstNonEmpty(r.Depart, "-"),
			utils.FormatAmount(r.Total), r.Status, r.CreatedAt)
	}
	return tw.Flush()
}

func newBookingsCancelCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending or confirmed booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid booking id %q", args[0])
			}
			svc, err := opts.bookingService()
			if err != nil {
				return err
			}
			if err := svc.Cancel(cmd.Context(), id); err != nil {
				return fmt.Errorf("cancel booking %d: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "booking %d cancelled\n", id)
			return nil
		},
	}
}
