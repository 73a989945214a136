// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Olympus Support",
            "email": "support@olympus.com"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {"tags": ["System"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Database unreachable"}}}
        },
        "/api/login": {
            "post": {"tags": ["Auth"], "summary": "Log in", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.LoginRequest"}}],
                "responses": {"200": {"description": "Session issued"}, "401": {"description": "Invalid email or password"}}}
        },
        "/api/register": {
            "post": {"tags": ["Auth"], "summary": "Register a student", "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}, "409": {"description": "Email already registered"}}}
        },
        "/logout": {
            "get": {"tags": ["Auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}
        },
        "/dashboard": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["Dashboard"], "summary": "Student dashboard or teacher panel", "responses": {"200": {"description": "OK"}, "401": {"description": "Login required"}}}
        },
        "/courses": {
            "get": {"tags": ["Content"], "summary": "List published courses", "responses": {"200": {"description": "OK"}}}
        },
        "/questions": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["Content"], "summary": "List questions with topic and difficulty filters",
                "parameters": [
                    {"type": "string", "name": "topic", "in": "query"},
                    {"type": "string", "name": "difficulty", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}}
        },
        "/questions/{id}": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["Content"], "summary": "Get a question",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/exams": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["Exams"], "summary": "Upcoming and completed exams", "responses": {"200": {"description": "OK"}}}
        },
        "/api/exams/{id}/submit": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Exams"], "summary": "Submit an exam attempt",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid score"}, "404": {"description": "Exam not found"}}}
        },
        "/classes": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["Classes"], "summary": "Current or next live class", "responses": {"200": {"description": "OK"}}}
        },
        "/api/chat/messages": {
            "get": {"tags": ["Chat"], "summary": "Live class chat history",
                "parameters": [{"type": "integer", "name": "class_id", "in": "query"}],
                "responses": {"200": {"description": "OK"}}}
        },
        "/api/chat/send": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Chat"], "summary": "Post a chat message", "responses": {"200": {"description": "OK"}, "400": {"description": "Empty message"}}}
        },
        "/api/ai/ask": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["AI"], "summary": "Ask the AI tutor", "responses": {"200": {"description": "OK"}, "400": {"description": "Empty question"}, "503": {"description": "Tutor unavailable"}}}
        },
        "/api/ai/explain/{id}": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["AI"], "summary": "Explain a question's solution",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Question not found"}, "503": {"description": "Tutor unavailable"}}}
        },
        "/teacher": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["Teacher"], "summary": "Teacher panel", "responses": {"200": {"description": "OK"}, "403": {"description": "Teachers only"}}}
        },
        "/api/teacher/courses": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Teacher"], "summary": "Create a course", "responses": {"201": {"description": "Created"}}}
        },
        "/api/teacher/questions": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Teacher"], "summary": "Create a question", "responses": {"201": {"description": "Created"}}}
        },
        "/api/teacher/questions/import": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Teacher"], "summary": "Import question records", "responses": {"200": {"description": "OK"}}}
        },
        "/api/teacher/exams": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Teacher"], "summary": "Create an exam", "responses": {"201": {"description": "Created"}}}
        },
        "/api/teacher/classes": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["Teacher"], "summary": "Schedule a live class", "responses": {"201": {"description": "Created"}}}
        }
    },
    "definitions": {
        "controller.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Olympus API",
	Description:      "Backend for the Olympus math-olympiad learning platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
