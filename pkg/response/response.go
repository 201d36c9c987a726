package response

// Body is the shared JSON envelope for error and status responses that
// do not go through fres.
type Body struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(code, message string, data interface{}) Body {
	return Body{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func Success(message string, data interface{}) Body {
	return Body{
		Code:    "OK",
		Message: message,
		Data:    data,
	}
}
