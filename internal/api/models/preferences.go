package models

// ThemeResponse is the persisted dashboard theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// ThemeRequest updates the persisted dashboard theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ReloadResponse reports the outcome of an admin dataset reload.
type ReloadResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}
