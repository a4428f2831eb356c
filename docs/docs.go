package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Office scheduling and task board API",
        "title": "Schedule Board API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if the API is healthy",
                "responses": {
                    "200": {
                        "description": "API is healthy"
                    }
                }
            }
        },
        "/api/v1/appointments": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Create an appointment",
                "description": "Stores a new appointment from the intake form, optionally sending the Zoom link",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "appointment",
                        "description": "Intake form fields",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "owner": {
                                    "type": "string",
                                    "example": "Cindy"
                                },
                                "time": {
                                    "type": "string",
                                    "example": "1:00"
                                },
                                "client_name": {
                                    "type": "string",
                                    "example": "Florence Chan"
                                },
                                "location": {
                                    "type": "string",
                                    "example": "Zoom"
                                },
                                "send_zoom_link": {
                                    "type": "boolean"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Appointment created"
                    },
                    "400": {
                        "description": "Invalid intake form"
                    }
                }
            }
        },
        "/api/v1/appointments/{id}": {
            "put": {
                "tags": ["Schedule"],
                "summary": "Update an appointment",
                "description": "Replaces an existing appointment with the resubmitted intake form",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Appointment updated"
                    },
                    "404": {
                        "description": "Appointment not found"
                    }
                }
            }
        },
        "/api/v1/appointments/{id}/resend-link": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Resend a Zoom invitation link",
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Link re-sent"
                    },
                    "400": {
                        "description": "Not a Zoom appointment"
                    }
                }
            }
        },
        "/api/v1/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Daily schedule board",
                "description": "Appointments grouped by owner, each group ordered by time of day",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Grouped day view"
                    }
                }
            }
        },
        "/api/v1/schedule/extract": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Extract appointments from an image",
                "description": "Sends a schedule screenshot to the extraction model and admits the results. Rate limited.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "image",
                        "description": "Base64 image payload",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "image_base64": {
                                    "type": "string"
                                },
                                "mime_type": {
                                    "type": "string",
                                    "example": "image/png"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Extracted appointments"
                    },
                    "429": {
                        "description": "Too many requests"
                    }
                }
            }
        },
        "/api/v1/todos": {
            "post": {
                "tags": ["Todos"],
                "summary": "Create a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Task created"
                    },
                    "400": {
                        "description": "Missing task text"
                    }
                }
            },
            "get": {
                "tags": ["Todos"],
                "summary": "List tasks",
                "description": "Filtered, grouped task view with aggregate counts",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "assignee",
                        "type": "string"
                    },
                    {
                        "in": "query",
                        "name": "scope",
                        "type": "string",
                        "description": "today, tomorrow, next7days, all, custom"
                    },
                    {
                        "in": "query",
                        "name": "date",
                        "type": "string",
                        "description": "YYYY-MM-DD, required for the custom scope"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Grouped task view"
                    }
                }
            }
        },
        "/api/v1/todos/import": {
            "post": {
                "tags": ["Todos"],
                "summary": "Import appointments as tasks",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Created tasks"
                    }
                }
            }
        },
        "/api/v1/crm/clients": {
            "get": {
                "tags": ["CRM"],
                "summary": "Search CRM clients",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "q",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Matching clients"
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Schedule Board API",
	Description:      "Office scheduling and task board API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
