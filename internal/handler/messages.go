package handler

// User-facing replies.
const (
	msgAlreadyRegistered = "You're already registered! Send me a message to start chatting."
	msgWelcome           = "Welcome! Please register yourself:"
	btnRegister          = "Register"

	msgContactSaved   = "Thank you! You can access the chatbot now type 'Hello' to start chatting."
	msgContactMissing = "Please register using the button."

	msgImagePrefix     = "Description of the image: "
	msgPDFPrefix       = "Description of the first page of the PDF: "
	msgOnlyPDF         = "Sorry, I can only process PDF files."
	msgProcessingError = "Sorry, I couldn't process your request. Please try again later."

	msgSearchUsage   = "Please provide a search query after /websearch."
	msgSearchEmpty   = "Sorry, no results found for your query."
	msgSearchResults = "Here are the top results for your query:\n\n"
	msgSearchError   = "Sorry, there was an error: %v"
)
