package util

func SuccessResponse(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"success": true,
		"data":    data,
	}
}

func FailedResponse(err error) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   err.Error(),
	}
}
