package routes

import (
	"net/http"

	"mjtoys/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handle(path string, method string, fn http.HandlerFunc) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		fn(w, r)
	}))))
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	excelHandler *handlers.ExcelHandler,
	documentHandler *handlers.DocumentHandler,
	fieldEditHandler *handlers.FieldEditHandler,
	settingsHandler *handlers.SettingsHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	handle("/signup", http.MethodPost, userHandler.Signup)
	handle("/login", http.MethodPost, userHandler.Login)

	// Order parsing and document generation
	handle("/parse-excel", http.MethodPost, excelHandler.ParseExcel)
	handle("/generate-document", http.MethodPost, documentHandler.GenerateDocument)
	handle("/generate-pdf", http.MethodPost, pdfHandler.GeneratePDF)

	// Field edits
	handle("/save-field-edit", http.MethodPost, fieldEditHandler.SaveFieldEdit)
	handle("/get-field-edits", http.MethodPost, fieldEditHandler.GetFieldEdits)

	// History
	handle("/get-history", http.MethodGet, documentHandler.GetHistory)
	handle("/get-document", http.MethodPost, documentHandler.GetDocument)
	handle("/save-document", http.MethodPost, documentHandler.SaveDocument)

	// Settings
	handle("/get-settings", http.MethodGet, settingsHandler.GetSettings)
	handle("/update-settings", http.MethodPost, settingsHandler.UpdateSettings)
	handle("/upload-logo", http.MethodPost, settingsHandler.UploadLogo)

	// Health check
	handle("/health", http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","message":"M&J Toys API is running"}`))
	})
}
