package email

import (
	"fmt"
	"html"
)

// NewMessageBody - письмо владельцу провайдера о новом обращении клиента.
// Пользовательский ввод экранируется, тело письма - text/html.
func NewMessageBody(providerName, clientName, clientPhone, text string) (subject, body string) {
	clientName = html.EscapeString(clientName)
	clientPhone = html.EscapeString(clientPhone)
	text = html.EscapeString(text)

	subject = fmt.Sprintf("Новое сообщение для «%s»", providerName)
	body = fmt.Sprintf(
		`<p>Вам пришло новое сообщение через карту провайдеров.</p>
<p><b>Имя клиента:</b> %s<br>
<b>Телефон:</b> %s</p>
<blockquote>%s</blockquote>
<p>Ответьте клиенту по указанному телефону.</p>`,
		clientName, clientPhone, text,
	)
	return subject, body
}
