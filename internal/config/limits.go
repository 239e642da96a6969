package config

const (
	// MaxDataRoomNameLength is the maximum length for data room names.
	// Limited to 255 to keep names short and index friendly.
	MaxDataRoomNameLength = 255

	// MaxFolderNameLength is the maximum length for folder names.
	MaxFolderNameLength = 255

	// MaxDocumentNameLength is the maximum length for document names.
	// Same as folder names for consistency.
	MaxDocumentNameLength = 255

	// MaxProjectNameLength is the maximum length for project names.
	MaxProjectNameLength = 255

	// MaxProjectDescriptionLength caps free-text project descriptions.
	MaxProjectDescriptionLength = 2000

	// MaxAuthProviderUserIDLength fits ids such as "auth0|5f1c..." or "google-oauth2|..."
	MaxAuthProviderUserIDLength = 255

	// MaxAnsaradaPageSize bounds the `first` argument forwarded to Ansarada.
	MaxAnsaradaPageSize = 100
)
