package shared

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

var jsonAPI = sonic.Config{
	UseNumber:            true,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()

// JSONMarshal and JSONUnmarshal are plugged into fiber so request and response
// bodies go through the same sonic configuration.
func JSONMarshal(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

func JSONUnmarshal(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

var (
	successResponse       = mustMarshal(Response{Success: true})
	notFoundResponse      = mustMarshal(Response{Success: false, Error: "Not Found"})
	unauthorizedResponse  = mustMarshal(Response{Success: false, Error: "Unauthorized"})
	internalErrorResponse = mustMarshal(Response{Success: false, Error: MessageInternalError})
)

func mustMarshal(v interface{}) []byte {
	b, _ := jsonAPI.Marshal(v)
	return b
}

func writeRaw(c *fiber.Ctx, httpCode int, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(httpCode).Send(body)
}

func ResponseJSON(c *fiber.Ctx, httpCode int, message string, data interface{}) error {
	if httpCode < fiber.StatusBadRequest && message == "" && data == nil {
		return writeRaw(c, httpCode, successResponse)
	}

	body, err := jsonAPI.Marshal(Response{
		Success: httpCode < fiber.StatusBadRequest,
		Message: message,
		Data:    data,
	})
	if err != nil {
		return err
	}
	return writeRaw(c, httpCode, body)
}

// ResponseError writes the {"success": false, "error": message} envelope.
func ResponseError(c *fiber.Ctx, httpCode int, message string) error {
	switch {
	case httpCode == fiber.StatusNotFound && message == "Not Found":
		return writeRaw(c, httpCode, notFoundResponse)
	case httpCode == fiber.StatusUnauthorized && message == "Unauthorized":
		return writeRaw(c, httpCode, unauthorizedResponse)
	case httpCode == fiber.StatusInternalServerError && message == MessageInternalError:
		return writeRaw(c, httpCode, internalErrorResponse)
	}

	body, err := jsonAPI.Marshal(Response{Success: false, Error: message})
	if err != nil {
		return err
	}
	return writeRaw(c, httpCode, body)
}

// ResponseFields writes {"success": true, ...fields}.
func ResponseFields(c *fiber.Ctx, httpCode int, fields map[string]interface{}) error {
	body := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true

	b, err := jsonAPI.Marshal(body)
	if err != nil {
		return err
	}
	return writeRaw(c, httpCode, b)
}

func ResponseOK(c *fiber.Ctx, fields map[string]interface{}) error {
	return ResponseFields(c, fiber.StatusOK, fields)
}
