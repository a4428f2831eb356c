package schedule

import "schedule-board/internal/model"

// SeedData is the demo day loaded into the board at startup when seeding
// is enabled.
func SeedData() []model.Appointment {
	return []model.Appointment{
		{
			ID: "1", Owner: "Cindy", Time: "9:00", ClientName: "Dina Wadi - Nook windows",
			Location: string(model.LocationHouse),
		},
		{
			ID: "2", Owner: "Cindy", Time: "10:00", ClientName: "Trevor McAlester",
			Description:     "Nationwide benfit for his son upon Trevor's death",
			LastAcctSummary: "10/9/2025", Phone: "949-874-7082",
			Location: string(model.LocationPhone), Confirmation: string(model.ConfirmationYes),
			DPPsValue: "Only has Annuities",
		},
		{
			ID: "3", Owner: "Cindy", Time: "11:00", ClientName: "Ronnie Torres",
			Description:     "Group Health Insurance",
			LastAcctSummary: "CIF insurance", Phone: "714-960-4700", Email: "ronnie@example.com",
			Location: string(model.LocationZoom), ZoomLink: "https://zoom.us/j/123456789", ZoomLinkSent: true,
			Confirmation: string(model.ConfirmationYes), DPPsValue: "NA",
		},
		{
			ID: "4", Owner: "Cindy", Time: "1:00", ClientName: "Florence Chan and Henry Mittel",
			Description:     "Tax strategies",
			LastAcctSummary: "9/24/2025", Phone: "925-913-0072",
			Location: string(model.LocationOffice), Confirmation: string(model.ConfirmationYes),
			DPPsValue: "$1,000,000", IFsValue: "$69...",
		},
		{
			ID: "5", Owner: "Leticia", Time: "9:30", ClientName: "Ellen Tunkelrott",
			Description:     "Income streams",
			LastAcctSummary: "9/15/2025", Phone: "310-503-1874", Email: "tunkelrott@gmail.com",
			Location: string(model.LocationZoom), ZoomLink: "https://zoom.us/my/leticia", ZoomLinkSent: true,
			Confirmation: string(model.ConfirmationLM), DPPsValue: "$301,000",
		},
		{
			ID: "6", Owner: "Staff", Time: "10:00", ClientName: "Intern",
			Phone:    "Project Initiative meeting",
			Location: string(model.LocationOffice), Confirmation: string(model.ConfirmationYes),
		},
	}
}
