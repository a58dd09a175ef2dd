package erro

const AlbumServiceUnavalaible = "PhotoAlbum-Service is unavailable"
const ContextCanceled = "Context canceled or timeout"
const ClientErrorType = "Client"
const ServerErrorType = "Server"

const (
	CodeNotFound     = "NotFound"
	CodeForbidden    = "Forbidden"
	CodeConflict     = "Conflict"
	CodeInvalidInput = "InvalidInput"
	CodeUnauthorized = "Unauthorized"
	CodeInternal     = "Internal"
)

const NonExistentAlbum = "A non-existent album has been entered"
const NonExistentPhoto = "A non-existent photo has been entered"
const NonExistentUser = "A non-existent user has been entered"
const NonExistentBlob = "The photo file was not found in the content store"
const RootAlbumDelete = "The root album cannot be deleted"
const RootAlbumRename = "The root album cannot be renamed"
const RootAlbumMove = "The root album cannot be moved"
const NestingNotAllowed = "Nested albums are disabled"
const AlbumMoveIntoSubtree = "An album cannot be moved into its own subtree"
const DuplicateAlbumName = "An album with that name already exists in this parent"
const InvalidAlbumName = "An invalid album name has been entered"
const AlreadyHasAccess = "The user already has access to this album"
const RoleAlreadySet = "The user already has this role on the album"
const NoSuchGrant = "The user has no access to this album"
const InvalidAccessRole = "An invalid album access role has been entered"
const OwnerAccessSelf = "The owner's access to his own album cannot be changed"
const NoViewAccess = "No permission to view this album"
const NoEditAccess = "No permission to edit this album"
const NoAdministerAccess = "No permission to administer this album"
const NotAlbumOwner = "Only the album owner can perform this operation"
const NotPhotoOwner = "Only the photo owner can perform this operation"
const AdminRoleRequired = "The ADMIN system role is required for this operation"
const LargeFile = "File too large - max 25 MB"
const InvalidFileFormat = "Invalid file format"
const InvalidToken = "Invalid or expired token"
const RevokedToken = "The token has been revoked"
const InvalidServiceKey = "Invalid service API key"
const UniqueUserConst = "Username or email is already taken"
const InvalidRegistrationData = "Invalid registration data has been entered"
const IncorrectPassword = "Incorrect password has been entered"
const CoverOutsideAlbum = "The cover photo must belong to the album"

const ErrorAfterReqAlbums = "Error after request into albums: %v"
const ErrorAfterReqPhotos = "Error after request into photos: %v"
const ErrorAfterReqUsers = "Error after request into users: %v"
const ErrorAfterReqPermissions = "Error after request into album_permissions: %v"
const ErrorAfterReqBlobRefs = "Error after request into blob_refs: %v"
const ErrorSetToken = "Set revoked-token error: %v"
const ErrorGetToken = "Get revoked-token error: %v"
const ErrorMarshal = "Data marshal error: %v"
const ErrorUnmarshal = "Data unmarshal error: %v"
const ErrorScan = "Scan error: %v"
const ErrorOverflowTaskQ = "Task queue is full"
const ErrorGenerateHashPassword = "Generate hash-password error: %v"
const ErrorSignToken = "Token signing error: %v"
const ErrorDecodeImage = "Image decode error: %v"

type CustomError struct {
	Message string
	Type    string
	Code    string
}

func (e *CustomError) Error() string {
	return e.Message
}
func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType, Code: CodeInternal}
}
func NotFound(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType, Code: CodeNotFound}
}
func Forbidden(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType, Code: CodeForbidden}
}
func Conflict(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType, Code: CodeConflict}
}
func InvalidInput(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType, Code: CodeInvalidInput}
}
func Unauthorized(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType, Code: CodeUnauthorized}
}
