package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduCenter Matching API",
        "description": "Registration option narrowing, teacher lookup and auto-enrollment for education center branches",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Registration", "description": "Options a student can still pick"},
        {"name": "Teachers", "description": "Level and course teacher lookups"},
        {"name": "Enrollment", "description": "Auto-enrollment of registered students"}
    ],
    "paths": {
        "/branches/options": {
            "post": {
                "tags": ["Registration"],
                "summary": "Allowed registration options",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentSelection"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Branch snapshot unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/branches/{branchId}/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Teacher mapping of a branch",
                "parameters": [
                    {"name": "branchId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/branches/{branchId}/teachers/lookup": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Resolve teacher for a level or course",
                "parameters": [
                    {"name": "branchId", "in": "path", "required": true, "type": "string"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auto-enrollments": {
            "post": {
                "tags": ["Enrollment"],
                "summary": "Auto-enroll a student profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentProfile"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Enrollment needs review", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/auto-enroll": {
            "post": {
                "tags": ["Enrollment"],
                "summary": "Auto-enroll a stored student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "async", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "202": {"description": "Queued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Enrollment needs review", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/auto-enroll/result": {
            "get": {
                "tags": ["Enrollment"],
                "summary": "Latest auto-enrollment outcome",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No outcome recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Result store disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/{id}/enrollments": {
            "get": {
                "tags": ["Enrollment"],
                "summary": "Classes a student is enrolled in",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "StudentSelection": {
            "type": "object",
            "properties": {
                "branch_id": {"type": "string"},
                "selected_courses": {"type": "array", "items": {"type": "string"}},
                "selected_levels": {"type": "array", "items": {"type": "string"}},
                "timing": {"type": "string"}
            }
        },
        "StudentProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "branch_id": {"type": "string"},
                "program": {"description": "Course list, or a legacy string that may hold a JSON-encoded list"},
                "course_level": {"type": "string", "description": "Comma-separated level labels"},
                "timing": {"type": "string"},
                "courses": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["id"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
