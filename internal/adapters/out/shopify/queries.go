package shopify

// GraphQL documents used by the feed adapter.
//
// Both order and fulfillment queries request events with reverse: true so the
// feed delivers each timeline newest first. That ordering is the timeline-head
// contract the core relies on: the adapter must never hand over events in any
// other order.

const ordersQuery = `
query dashboardOrders($first: Int!) {
  orders(first: $first, reverse: true) {
    edges {
      node {
        id
        name
        processedAt
        displayFulfillmentStatus
        fulfillments(first: 5) {
          id
          events(first: 10, reverse: true) {
            edges {
              node {
                status
                createdAt
              }
            }
          }
        }
      }
    }
  }
}`

const fulfillmentQuery = `
query fulfillmentTimeline($id: ID!) {
  node(id: $id) {
    ... on Fulfillment {
      id
      order {
        id
      }
      events(first: 10, reverse: true) {
        edges {
          node {
            status
            createdAt
          }
        }
      }
    }
  }
}`

// Wire payload types for the queries above.

type ordersPayload struct {
	Orders struct {
		Edges []struct {
			Node orderNode `json:"node"`
		} `json:"edges"`
	} `json:"orders"`
}

type orderNode struct {
	ID                       string            `json:"id"`
	Name                     string            `json:"name"`
	ProcessedAt              string            `json:"processedAt"`
	DisplayFulfillmentStatus string            `json:"displayFulfillmentStatus"`
	Fulfillments             []fulfillmentNode `json:"fulfillments"`
}

type fulfillmentNode struct {
	ID    string `json:"id"`
	Order *struct {
		ID string `json:"id"`
	} `json:"order,omitempty"`
	Events struct {
		Edges []struct {
			Node eventNode `json:"node"`
		} `json:"edges"`
	} `json:"events"`
}

type eventNode struct {
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type fulfillmentPayload struct {
	Node *fulfillmentNode `json:"node"`
}
