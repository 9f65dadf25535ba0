package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "web.app_name", "Avatar Pick")
	message.SetString(lang, "web.title.page", "%s | Avatar Pick")

	// Tela de seleção
	message.SetString(lang, "web.set_avatar.heading", "Escolha um avatar para sua foto de perfil")
	message.SetString(lang, "web.set_avatar.submit", "Definir como foto de perfil")
	message.SetString(lang, "web.set_avatar.random", "Escolher avatar aleatório")
	message.SetString(lang, "web.set_avatar.reload", "Carregar novos avatares")
	message.SetString(lang, "web.set_avatar.candidate_alt", "Avatar %d")
	message.SetString(lang, "web.set_avatar.empty", "Nenhum avatar pôde ser carregado.")
	message.SetString(lang, "web.set_avatar.partial", "%d de %d avatares não puderam ser carregados.")
	message.SetString(lang, "web.set_avatar.notice_select", "Por favor, selecione um avatar")
	message.SetString(lang, "web.set_avatar.notice_failed", "Erro ao definir o avatar. Tente novamente.")
	message.SetString(lang, "web.set_avatar.notice_saved", "Seu avatar foi definido.")
	message.SetString(lang, "web.set_avatar.notice_no_candidates", "Não há avatares para escolher.")

	// Início
	message.SetString(lang, "web.home.title", "Início")
	message.SetString(lang, "web.home.greeting", "Bem-vindo, %s")
	message.SetString(lang, "web.home.greeting_anonymous", "Bem-vindo")
	message.SetString(lang, "web.home.avatar_alt", "Seu avatar")
	message.SetString(lang, "web.home.no_avatar", "Você ainda não escolheu um avatar.")
	message.SetString(lang, "web.home.change_avatar", "Trocar avatar")
	message.SetString(lang, "web.home.pick_avatar", "Escolher um avatar")

	// Avisos
	message.SetString(lang, "web.toast.close", "Fechar")

	// Erros
	message.SetString(lang, "web.error.title", "Erro")
	message.SetString(lang, "web.error.not_found", "Esta página não existe ou expirou.")
	message.SetString(lang, "web.error.pick_not_found", "Esta seleção de avatares expirou. Carregue novos avatares para continuar.")
	message.SetString(lang, "web.error.invalid_selection", "Esse avatar não está disponível.")
	message.SetString(lang, "web.error.unavailable", "O serviço de avatares está indisponível. Tente novamente.")
	message.SetString(lang, "web.error.internal", "Algo deu errado.")
	message.SetString(lang, "web.error.back_home", "Voltar ao início")
}
