// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate from the handler annotations with:
//
//	swag init -g server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/register/": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Create an account and an empty wallet",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/auth.RegisterRequest"
						}
					}
				]
			}
		},
		"/login/": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in and start a session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/auth.LoginRequest"
						}
					}
				]
			}
		},
		"/logout/": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "End the session and drop staged passengers",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/change_password/": {
			"put": {
				"tags": [
					"auth"
				],
				"summary": "Change password",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/auth.ChangePasswordRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/me/": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/token/refresh/": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Refresh the access token within the same session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/auth.RefreshTokenRequest"
						}
					}
				]
			}
		},
		"/ticket_booking/": {
			"get": {
				"tags": [
					"buses"
				],
				"summary": "Search buses by route and date",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "source",
						"type": "string"
					},
					{
						"in": "query",
						"name": "destination",
						"type": "string"
					},
					{
						"in": "query",
						"name": "date",
						"type": "string",
						"format": "date"
					},
					{
						"in": "query",
						"name": "num_tickets",
						"type": "integer",
						"description": "Number of passengers"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"buses"
				],
				"summary": "Search buses by route and date",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/buses.SearchRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/passenger_details/{bus_id}/": {
			"get": {
				"tags": [
					"bookings"
				],
				"summary": "Show passenger entry progress",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "bus_id",
						"required": true,
						"type": "integer",
						"description": "Bus ID"
					},
					{
						"in": "query",
						"name": "num_tickets",
						"type": "integer",
						"description": "Number of passengers"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"bookings"
				],
				"summary": "Add one passenger",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "path",
						"name": "bus_id",
						"required": true,
						"type": "integer",
						"description": "Bus ID"
					},
					{
						"in": "query",
						"name": "num_tickets",
						"type": "integer",
						"description": "Number of passengers"
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/bookings.PassengerRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/confirm_booking/{bus_id}/": {
			"get": {
				"tags": [
					"bookings"
				],
				"summary": "Review staged passengers, fare and balance",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "bus_id",
						"required": true,
						"type": "integer",
						"description": "Bus ID"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"bookings"
				],
				"summary": "Commit the booking",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"402": {
						"description": "Insufficient wallet balance",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					},
					"409": {
						"description": "Not enough seats available",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "bus_id",
						"required": true,
						"type": "integer",
						"description": "Bus ID"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/booking_success/{booking_id}/": {
			"get": {
				"tags": [
					"bookings"
				],
				"summary": "Show a confirmed booking",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "booking_id",
						"required": true,
						"type": "integer",
						"description": "Booking ID"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/booking_success/{booking_id}/ticket.pdf": {
			"get": {
				"tags": [
					"bookings"
				],
				"summary": "Download the e-ticket",
				"produces": [
					"application/pdf"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "booking_id",
						"required": true,
						"type": "integer",
						"description": "Booking ID"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/add_money/": {
			"get": {
				"tags": [
					"wallets"
				],
				"summary": "Current wallet balance",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"wallets"
				],
				"summary": "Top up the wallet",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/wallets.TopUpRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/admin_dashboard/": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List all buses",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/add_bus/": {
			"post": {
				"tags": [
					"admin"
				],
				"summary": "Add a bus",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.StandardApiResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/buses.CreateBusRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"response.StandardApiResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"status_code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"data": {
					"type": "object"
				},
				"errors": {
					"type": "object"
				}
			}
		},
		"auth.ChangePasswordRequest": {
			"type": "object",
			"required": [
				"current_password",
				"new_password"
			],
			"properties": {
				"current_password": {
					"type": "string"
				},
				"new_password": {
					"type": "string",
					"minLength": 6
				}
			}
		},
		"auth.RegisterRequest": {
			"type": "object",
			"properties": {
				"first_name": {
					"type": "string"
				},
				"last_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"first_name",
				"last_name",
				"email",
				"password"
			]
		},
		"auth.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"auth.RefreshTokenRequest": {
			"type": "object",
			"properties": {
				"refresh_token": {
					"type": "string"
				}
			},
			"required": [
				"refresh_token"
			]
		},
		"buses.SearchRequest": {
			"type": "object",
			"properties": {
				"source": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date"
				},
				"num_tickets": {
					"type": "integer"
				}
			},
			"required": [
				"source",
				"destination",
				"date",
				"num_tickets"
			]
		},
		"buses.CreateBusRequest": {
			"type": "object",
			"properties": {
				"bus_name": {
					"type": "string"
				},
				"bus_number": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"departure_time": {
					"type": "string",
					"format": "date-time"
				},
				"arrival_time": {
					"type": "string",
					"format": "date-time"
				},
				"fare": {
					"type": "number"
				},
				"total_seats": {
					"type": "integer"
				}
			},
			"required": [
				"bus_name",
				"bus_number",
				"source",
				"destination",
				"departure_time",
				"fare",
				"total_seats"
			]
		},
		"bookings.PassengerRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"age": {
					"type": "integer"
				},
				"gender": {
					"type": "string",
					"enum": [
						"M",
						"F",
						"O"
					]
				},
				"seat_preference": {
					"type": "string",
					"enum": [
						"WINDOW",
						"AISLE",
						"ANY"
					]
				}
			},
			"required": [
				"name",
				"age",
				"gender"
			]
		},
		"wallets.TopUpRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number"
				}
			},
			"required": [
				"amount"
			]
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Busline API",
	Description:      "Bus ticket reservation backend: search, passenger staging, wallet-paid booking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
