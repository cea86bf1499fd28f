package models

type MessageTemplate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

var MessageTemplates = []MessageTemplate{
	{
		Title:   "Request Assigned",
		Content: "Hi [NAME], you have been assigned a new service request #[REF]. Please check your dashboard for details.",
	},
	{
		Title:   "Request Completed",
		Content: "Hi [NAME], your service request #[REF] has been completed successfully. Thank you for choosing QuickLink Services!",
	},
	{
		Title:   "Status Update",
		Content: "Hi [NAME], your request #[REF] status has been updated to [STATUS]. You can track progress in your dashboard.",
	},
	{
		Title:   "Team Announcement",
		Content: "Team update: [MESSAGE]. Please acknowledge receipt. Thank you!",
	},
}

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type SendMessageRequest struct {
	Channel   string `json:"channel" validate:"required,oneof=sms whatsapp email"`
	Recipient string `json:"recipient" validate:"required"`
	Message   string `json:"message" validate:"required"`
}
