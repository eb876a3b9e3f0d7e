package shopify

// fulfillmentEventCreateMutation appends a delivery event to a fulfillment's
// timeline. Platform validation failures arrive as userErrors and are
// surfaced to the caller verbatim.
const fulfillmentEventCreateMutation = `
mutation fulfillmentEventCreate($fulfillmentEvent: FulfillmentEventInput!) {
  fulfillmentEventCreate(fulfillmentEvent: $fulfillmentEvent) {
    fulfillmentEvent {
      id
      status
    }
    userErrors {
      field
      message
    }
  }
}`

type fulfillmentEventCreatePayload struct {
	FulfillmentEventCreate struct {
		FulfillmentEvent *struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"fulfillmentEvent"`
		UserErrors []userError `json:"userErrors"`
	} `json:"fulfillmentEventCreate"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}
