/*
Package rsvpsdk is a Go client for the wedding RSVP service.

# SDKClient vs Session

SDKClient covers the public endpoints: health probes and the guest
facing RSVP page, where the invite token is the only credential.

	client := rsvpsdk.NewSDKClient("https://rsvp.example.com")

	view, err := client.GetInvite(ctx, token)
	res, err := client.SubmitRSVP(ctx, token, rsvpsdk.SubmitRSVPRequest{
		IsAttending:     true,
		AdultsAttending: 1,
		PlusOneName:     "Robin",
		MealSelections: []rsvpsdk.MealSelection{
			{GuestID: rsvpsdk.PlusOneGuestID, MealOptionID: soupID, CourseType: "STARTER"},
		},
	})

Logging in returns a Session carrying the admin bearer token:

	session, err := client.Login(ctx, "admin", password)
	invites, err := session.ListInvites(ctx)
	defer session.Logout(ctx)

Sessions do not refresh. Once ExpiresAt has passed every call fails with
an *APIError whose StatusCode is 401; log in again.

# Errors

Non-2xx responses come back as *APIError:

	var apiErr *rsvpsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		time.Sleep(apiErr.RetryAfter)
	}
*/
package rsvpsdk
