package handlers

import (
	"errors"
	"net/http"

	response "arborlove_quote/internal/adapter/http/dto/response"
	"arborlove_quote/internal/usecase"
	"arborlove_quote/pkg"

	"github.com/gin-gonic/gin"
)

const uploadField = "image"

var (
	errMissingImage = pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Multipart field \"image\" is required", http.StatusBadRequest)
)

// UploadHandler accepts tree photos attached to a quote request.
type UploadHandler struct {
	usecase  usecase.IImageUploadUseCase
	maxBytes int64
}

// NewUploadHandler builds the handler. maxBytes caps the request body; zero
// leaves it uncapped.
func NewUploadHandler(uc usecase.IImageUploadUseCase, maxBytes int64) *UploadHandler {
	return &UploadHandler{usecase: uc, maxBytes: maxBytes}
}

// UploadImage godoc
// @Summary  Upload a tree photo
// @Tags     upload
// @Accept   multipart/form-data
// @Produce  json
// @Param    image  formData  file  true  "Tree photo"
// @Success  200    {object}  response.UploadImageResponse
// @Failure  400    {object}  pkg.HTTPError
// @Failure  413    {object}  pkg.HTTPError
// @Router   /upload [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.maxBytes > 0 {
		// Leave room for the multipart envelope around the file itself.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+1<<20)
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			appErr := mapUploadError(usecase.ErrImageTooLarge)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(errMissingImage.HTTPStatus, errMissingImage.ToHTTPError())
		return
	}
	defer f.Close()

	url, err := h.usecase.UploadImage(c.Request.Context(), usecase.UploadImageInput{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		appErr := mapUploadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.UploadImageResponse{Success: true, ImageURL: url})
}

func mapUploadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyImage), errors.Is(err, usecase.ErrInvalidImageType):
		return pkg.NewDomainErrorSimple("INVALID_UPLOAD", "Invalid image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the upload limit", http.StatusRequestEntityTooLarge)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
