// Package wacloud provides a Go client SDK for the WhatsApp Cloud API
// (Meta Graph API), covering message sending, templates, media, business
// profiles, QR codes and phone number management, plus webhook signature
// verification and payload parsing for inbound event deliveries.
//
// Basic usage:
//
//	client, err := wacloud.New(accessToken,
//	    wacloud.WithPhoneNumberID("106540352242922"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.SendText(ctx, "+15551234567", "hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("sent:", result.MessageID)
//
// Webhook handling composes two independent steps: authenticate the raw
// request body, then parse it.
//
//	if !wacloud.VerifyWebhookSignature(rawBody, r.Header.Get("X-Hub-Signature-256"), appSecret) {
//	    http.Error(w, "invalid signature", http.StatusUnauthorized)
//	    return
//	}
//	event, err := wacloud.ParseWebhook(rawBody)
package wacloud
