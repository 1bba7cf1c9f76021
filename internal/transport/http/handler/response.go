package handler

// response is the uniform envelope every endpoint answers with. Error
// responses are always {"success": false, "message": "..."}.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(message string) response {
	return response{Success: true, Message: message}
}

func fail(message string) response {
	return response{Success: false, Message: message}
}
