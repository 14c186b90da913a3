package i18n

import "github.com/admbot/intakebot/internal/models"

// catalog maps message keys to per-language display templates. Entries that
// exist only under the default language (operator-facing or deliberately
// untranslated prompts) rely on the fallback in Render.
var catalog = map[string]map[models.Language]string{
	"lang_prompt": {
		models.LanguageEnglish: "Please select your language / Por favor seleccione su idioma / Veuillez choisir votre langue / Por favor selecione seu idioma",
	},
	"welcome": {
		models.LanguageEnglish:    "Welcome to Anthony Darko Ministries!\n\nVision: Raising Kingdom Ambassadors (Matthew 28:19–20)\nMission: Spreading the message of hope and power through Christ (Romans 1:16)",
		models.LanguageSpanish:    "¡Bienvenido a Anthony Darko Ministries!\n\nVisión: Levantando embajadores del Reino (Mateo 28:19–20)\nMisión: Difundir el mensaje de esperanza y poder a través de Cristo (Romanos 1:16)",
		models.LanguageFrench:     "Bienvenue chez Anthony Darko Ministries !\n\nVision : Élever des ambassadeurs du Royaume (Matthieu 28:19–20)\nMission : Propager le message d'espoir et de puissance par le Christ (Romains 1:16)",
		models.LanguagePortuguese: "Bem-vindo ao Anthony Darko Ministries!\n\nVisão: Levantar embaixadores do Reino (Mateus 28:19–20)\nMissão: Espalhar a mensagem de esperança e poder através de Cristo (Romanos 1:16)",
	},
	"menu": {
		models.LanguageEnglish:    "Please choose an option:",
		models.LanguageSpanish:    "Por favor elija una opción:",
		models.LanguageFrench:     "Veuillez choisir une option :",
		models.LanguagePortuguese: "Por favor, escolha uma opção:",
	},
	"button_member": {
		models.LanguageEnglish:    "👤 Member Sign-Up",
		models.LanguageSpanish:    "👤 Registro de miembro",
		models.LanguageFrench:     "👤 Devenir membre",
		models.LanguagePortuguese: "👤 Inscrever-se como membro",
	},
	"button_prayer": {
		models.LanguageEnglish:    "🙏 Prayer Request",
		models.LanguageSpanish:    "🙏 Solicitud de oración",
		models.LanguageFrench:     "🙏 Demande de prière",
		models.LanguagePortuguese: "🙏 Pedido de oração",
	},
	"button_school": {
		models.LanguageEnglish:    "📚 School of Discipleship",
		models.LanguageSpanish:    "📚 Escuela de discipulado",
		models.LanguageFrench:     "📚 École de discipolat",
		models.LanguagePortuguese: "📚 Escola de discipulado",
	},
	"button_masterclass": {
		models.LanguageEnglish:    "🎓 Master Class",
		models.LanguageSpanish:    "🎓 Clase Magistral",
		models.LanguageFrench:     "🎓 Cours magistral",
		models.LanguagePortuguese: "🎓 Aula Magna",
	},
	"button_partner": {
		models.LanguageEnglish:    "💰 Give or Partner",
		models.LanguageSpanish:    "💰 Donar o Asociarse",
		models.LanguageFrench:     "💰 Donner ou Partenaire",
		models.LanguagePortuguese: "💰 Dar ou Parceiro",
	},
	"button_admin": {
		models.LanguageEnglish:    "📊 Admin Dashboard",
		models.LanguageSpanish:    "📊 Panel de Administración",
		models.LanguageFrench:     "📊 Tableau de bord Admin",
		models.LanguagePortuguese: "📊 Painel de Administração",
	},
	"partner_categories_prompt": {
		models.LanguageEnglish:    "Please choose a giving or partnership category:",
		models.LanguageSpanish:    "Por favor, elija una categoría de donación o asociación:",
		models.LanguageFrench:     "Veuillez choisir une catégorie de don ou de partenariat :",
		models.LanguagePortuguese: "Por favor, escolha uma categoria de doação ou parceria:",
	},
	"give_options_prompt": {
		models.LanguageEnglish: "Please select a giving option:",
	},
	"partner_options_prompt": {
		models.LanguageEnglish: "Please select a partnership option:",
	},
	"button_give_options": {
		models.LanguageEnglish: "🎁 Give Options",
	},
	"button_partner_options": {
		models.LanguageEnglish: "🤝 Partner Options",
	},
	"give_tithe": {
		models.LanguageEnglish:    "Tithe (Malachi 3:10)",
		models.LanguageSpanish:    "Diezmo (Malaquías 3:10)",
		models.LanguageFrench:     "Dîme (Malachie 3:10)",
		models.LanguagePortuguese: "Dízimo (Malaquias 3:10)",
	},
	"give_offering": {
		models.LanguageEnglish:    "Offering (2 Corinthians 9:7)",
		models.LanguageSpanish:    "Ofrenda (2 Corintios 9:7)",
		models.LanguageFrench:     "Offrande (2 Corinthiens 9:7)",
		models.LanguagePortuguese: "Oferta (2 Coríntios 9:7)",
	},
	"give_seed": {
		models.LanguageEnglish:    "Seed of Faith (Luke 6:38)",
		models.LanguageSpanish:    "Semilla de Fe (Lucas 6:38)",
		models.LanguageFrench:     "Graine de Foi (Luc 6:38)",
		models.LanguagePortuguese: "Semente de Fé (Lucas 6:38)",
	},
	"partner_man_of_god": {
		models.LanguageEnglish:    "Partner with Man of God",
		models.LanguageSpanish:    "Asociarse con Hombre de Dios",
		models.LanguageFrench:     "Partenaire avec l'Homme de Dieu",
		models.LanguagePortuguese: "Parceiro com Homem de Deus",
	},
	"partner_ministry": {
		models.LanguageEnglish:    "Ministry Partner",
		models.LanguageSpanish:    "Socio del Ministerio",
		models.LanguageFrench:     "Partenaire du Ministère",
		models.LanguagePortuguese: "Parceiro do Ministério",
	},
	"partner_angels": {
		models.LanguageEnglish:    "Angels on Assignment",
		models.LanguageSpanish:    "Ángeles en Asignación",
		models.LanguageFrench:     "Anges en Mission",
		models.LanguagePortuguese: "Anjos em Missão",
	},
	"back": {
		models.LanguageEnglish:    "↩️ Back to Menu",
		models.LanguageSpanish:    "↩️ Volver al Menú",
		models.LanguageFrench:     "↩️ Retour au Menu",
		models.LanguagePortuguese: "↩️ Voltar ao Menu",
	},
	"back_to_categories": {
		models.LanguageEnglish:    "⬅️ Back to Partner Categories",
		models.LanguageSpanish:    "⬅️ Volver a Categorías de Socio",
		models.LanguageFrench:     "⬅️ Retour aux Catégories de Partenariat",
		models.LanguagePortuguese: "⬅️ Voltar para Categorias de Parceiro",
	},
	"prompt_name": {
		models.LanguageEnglish:    "Please enter your full name:",
		models.LanguageSpanish:    "Por favor, ingrese su nombre completo:",
		models.LanguageFrench:     "Veuillez entrer votre nom complet :",
		models.LanguagePortuguese: "Por favor, digite seu nome completo:",
	},
	"prompt_phone": {
		models.LanguageEnglish:    "Please enter your phone number (e.g., +1234567890):",
		models.LanguageSpanish:    "Por favor, ingrese su número de teléfono (ej. +1234567890):",
		models.LanguageFrench:     "Veuillez entrer votre numéro de téléphone (ex. +1234567890) :",
		models.LanguagePortuguese: "Por favor, digite seu número de telefone (ex. +1234567890):",
	},
	"prompt_country": {
		models.LanguageEnglish:    "Please enter your country (e.g., South Africa, USA):",
		models.LanguageSpanish:    "Por favor, ingrese su país (ej. Sudáfrica, EE. UU.):",
		models.LanguageFrench:     "Veuillez entrer votre pays (ex. Afrique du Sud, États-Unis) :",
		models.LanguagePortuguese: "Por favor, digite seu país (ex. África do Sul, EUA):",
	},
	"prompt_prayer": {
		models.LanguageEnglish:    "Type your prayer request:",
		models.LanguageSpanish:    "Escriba su solicitud de oración:",
		models.LanguageFrench:     "Écrivez votre demande de prière :",
		models.LanguagePortuguese: "Digite seu pedido de oração:",
	},
	"prompt_amount": {
		models.LanguageEnglish:    "Please enter the amount you want to give (e.g., 100.00):",
		models.LanguageSpanish:    "Por favor, ingrese la cantidad que desea dar (ej. 100.00):",
		models.LanguageFrench:     "Veuillez entrer le montant que vous souhaitez donner (ex. 100.00) :",
		models.LanguagePortuguese: "Por favor, digite o valor que deseja doar (ex. 100.00):",
	},
	"prompt_payment_proof": {
		models.LanguageEnglish:    "Once payment is made, please upload proof of payment and Admin will contact you as soon as proof of payment is verified, Thank you for your support in the Kingdom,",
		models.LanguageSpanish:    "Una vez realizado el pago, por favor, suba el comprobante de pago y el Administrador se pondrá en contacto contigo tan pronto como se verifique el comprobante de pago. ¡Gracias por tu apoyo en el Reino!",
		models.LanguageFrench:     "Une fois le paiement effectué, veuillez télécharger la preuve de paiement et l'administrateur vous contactera dès que la preuve de paiement sera vérifiée. Merci pour votre soutien au Royaume !",
		models.LanguagePortuguese: "Uma vez que o pagamento seja feito, por favor, envie o comprovante de pagamento e o Administrador entrará em contato assim que o comprovante de pagamento for verificado. Obrigado pelo seu apoio no Reino!",
	},
	"payment_sa": {
		models.LanguageEnglish:    "🇿🇦 *South Africa Payment Options:*\n\n*Mobile Money (Capitec, Absa, Nedbank, FNB, Standard Bank):*\nSend to: `067 797 9198`\n\n_\"Gather my saints together unto me; those that have made a covenant with me by sacrifice.\" (Psalm 50:5)_",
		models.LanguageSpanish:    "🇿🇦 *Opciones de Pago en Sudáfrica:*\n\n*Dinero Móvil (Capitec, Absa, Nedbank, FNB, Standard Bank):*\nEnviar a: `067 797 9198`\n\n_\"Juntadme mis santos, los que hicieron conmigo pacto con sacrificio.\" (Salmo 50:5)_",
		models.LanguageFrench:     "🇿🇦 *Options de paiement en Afrique du Sud :*\n\n*Mobile Money (Capitec, Absa, Nedbank, FNB, Standard Bank):*\nEnvoyer à : `067 797 9198`\n\n_\"Rassemblez-moi mes saints, Qui ont fait alliance avec moi par le sacrifice !\" (Psaumes 50:5)_",
		models.LanguagePortuguese: "🇿🇦 *Opções de Pagamento na África do Sul:*\n\n*Dinheiro Móvel (Capitec, Absa, Nedbank, FNB, Standard Bank):*\nEnviar para: `067 797 9198`\n\n_\"Congregai a mim os meus santos, aqueles que fizeram comigo aliança com sacrifícios.\" (Salmos 50:5)_",
	},
	"payment_international": {
		models.LanguageEnglish:    "🌍 *International Payment Options:*\n\n*PayPal:*\nEmail: `anthonydarkoministries@gmail.com`\n\n*MTN MOMO - GHANA:*\n+233592289243 (Wendy N. Darko)\nReference: ADM(Tithe, Offering, Seed, Gift, Partner etc.)\n\n*For Remitly, World Remit, MoneyGram, Western Union:*\nPlease contact Admin for more details.\n\n_\"Gather my saints together unto me; those that have made a covenant with me by sacrifice.\" (Psalm 50:5)_",
		models.LanguageSpanish:    "🌍 *Opciones de Pago Internacionales:*\n\n*PayPal:*\nCorreo electrónico: `anthonydarkoministries@gmail.com`\n\n*MTN MOMO - GHANA:*\n+233592289243 (Wendy N. Darko)\nReferencia: ADM(Diezmo, Ofrenda, Semilla, Donación, Socio, etc.)\n\n*Para Remitly, World Remit, MoneyGram, Western Union:*\nPor favor, contacte al Administrador para más detalles.\n\n_\"Juntadme mis santos, los que hicieron conmigo pacto con sacrificio.\" (Salmo 50:5)_",
		models.LanguageFrench:     "🌍 *Options de paiement internationales :*\n\n*PayPal:*\nEmail : `anthonydarkoministries@gmail.com`\n\n*MTN MOMO - GHANA:*\n+233592289243 (Wendy N. Darko)\nRéférence : ADM(Dîme, Offrande, Semence, Don, Partenaire, etc.)\n\n*Pour Remitly, World Remit, MoneyGram, Western Union :*\nVeuillez contacter l'administrateur pour plus de détails.\n\n_\"Rassemblez-moi mes saints, Qui ont fait alliance avec moi par le sacrifice !\" (Psaumes 50:5)_",
		models.LanguagePortuguese: "🌍 *Opções de Pagamento Internacionais:*\n\n*PayPal:*\nE-mail: `anthonydarkoministries@gmail.com`\n\n*MTN MOMO - GHANA:*\n+233592289243 (Wendy N. Darko)\nReferência: ADM(Dízimo, Oferta, Semente, Doação, Parceiro, etc.)\n\n*Para Remitly, World Remit, MoneyGram, Western Union:*\nPor favor, entre em contato com o Administrador para mais detalhes.\n\n_\"Congregai a mim os meus santos, aqueles que fizeram comigo aliança com sacrifícios.\" (Salmos 50:5)_",
	},
	"button_contact_admin": {
		models.LanguageEnglish:    "📞 Contact Admin",
		models.LanguageSpanish:    "📞 Contactar Administrador",
		models.LanguageFrench:     "📞 Contacter l'Admin",
		models.LanguagePortuguese: "📞 Contatar Administrador",
	},
	"admin_contact_info": {
		models.LanguageEnglish:    "You can contact the admin directly:\nAdmin ID: `{admin_id}`",
		models.LanguageSpanish:    "Puede contactar al administrador directamente:\nID del administrador: `{admin_id}`",
		models.LanguageFrench:     "Vous pouvez contacter l'administrateur directement :\nID de l'administrateur : `{admin_id}`",
		models.LanguagePortuguese: "Você pode contatar o administrador diretamente:\nID do administrador: `{admin_id}`",
	},
	"invalid_input": {
		models.LanguageEnglish:    "⚠️ Invalid input. Please try again.",
		models.LanguageSpanish:    "⚠️ Entrada inválida. Por favor, inténtelo de nuevo.",
		models.LanguageFrench:     "⚠️ Entrée invalide. Veuillez réessayer.",
		models.LanguagePortuguese: "⚠️ Entrada inválida. Por favor, tente novamente.",
	},
	"member_signup_success": {
		models.LanguageEnglish:    "✅ Information saved successfully, we are pleased to have you as a ministry member. _\"Then the church throughout Judea, Galilee and Samaria enjoyed a time of peace and was strengthened. Living in the fear of the Lord and encouraged by the Holy Spirit, it increased in numbers.\" (Acts 9:31)_",
		models.LanguageSpanish:    "✅ Información guardada exitosamente, nos complace tenerte como miembro del ministerio. _\"Entonces las iglesias tenían paz por toda Judea, Galilea y Samaria; y eran edificadas, andando en el temor del Señor, y se acrecentaban por el consuelo del Espíritu Santo.\" (Hechos 9:31)_",
		models.LanguageFrench:     "✅ Informations enregistrées avec succès, nous sommes ravis de vous compter parmi les membres du ministère. _\"L'Église était en paix dans toute la Judée, la Galilée et la Samarie, s'édifiant et marchant dans la crainte du Seigneur, et elle s'accroissait par l'assistance du Saint-Esprit.\" (Actes 9:31)_",
		models.LanguagePortuguese: "✅ Informações salvas com sucesso, estamos felizes em tê-lo como membro do ministério. _\"Então as igrejas em toda a Judéia, Galiléia e Samaria tinham paz e eram edificadas; e, andando no temor do Senhor e na consolação do Espírito Santo, multiplicavam-se.\" (Atos 9:31)_",
	},
	"school_signup_success": {
		models.LanguageEnglish:    "✅ Information saved successfully, Thank you for becoming a Disciple of Anthony Darko Ministries.",
		models.LanguageSpanish:    "✅ Información guardada exitosamente, gracias por convertirte en un Discípulo de Anthony Darko Ministries.",
		models.LanguageFrench:     "✅ Informations enregistrées avec succès, merci de devenir un Disciple d'Anthony Darko Ministries.",
		models.LanguagePortuguese: "✅ Informações salvas com sucesso, obrigado por se tornar um Discípulo de Anthony Darko Ministries.",
	},
	"masterclass_signup_success": {
		models.LanguageEnglish:    "✅ Information saved successfully. We look forward to your growth in the Master Class!",
		models.LanguageSpanish:    "✅ Información guardada exitosamente. ¡Esperamos tu crecimiento en la Clase Magistral!",
		models.LanguageFrench:     "✅ Informations enregistrées avec succès. Nous attendons avec impatience votre croissance dans le Cours Magistral !",
		models.LanguagePortuguese: "✅ Informações salvas com sucesso. Estamos ansiosos pelo seu crescimento na Aula Magna!",
	},
	"prayer_thankyou": {
		models.LanguageEnglish:    "🙏 Prayer request received, we will stand in the gap for you in prayers, God bless you.",
		models.LanguageSpanish:    "🙏 Solicitud de oración recibida, estaremos intercediendo por ti en oración, Dios te bendiga.",
		models.LanguageFrench:     "🙏 Demande de prière reçue, nous intercéderons pour vous dans la prière, que Dieu vous bénisse.",
		models.LanguagePortuguese: "🙏 Pedido de oração recebido, estaremos intercedendo por você em oração, Deus te abençoe.",
	},
	"partner_thankyou": {
		models.LanguageEnglish:    "🙌 Thank you for partnering with us! Your seed is blessed. Admin will contact you as soon as proof of payment is verified, Thank you for your support in the Kingdom, _\"Gather my saints together unto me; those that have made a covenant with me by sacrifice.\" (Psalm 50:5)_",
		models.LanguageSpanish:    "🙌 ¡Gracias por asociarte con nosotros! Tu semilla es bendecida. El administrador se pondrá en contacto contigo tan pronto como se verifique el comprobante de pago. ¡Gracias por tu apoyo en el Reino! _\"Juntadme mis santos, los que hicieron conmigo pacto con sacrificio.\" (Salmo 50:5)_",
		models.LanguageFrench:     "🙌 Merci de vous être associé à nous ! Votre semence est bénie. L'administrateur vous contactera dès que la preuve de paiement sera vérifiée. Merci pour votre soutien au Royaume ! _\"Rassemblez-moi mes saints, Qui ont fait alliance avec moi par le sacrifice !\" (Psaumes 50:5)_",
		models.LanguagePortuguese: "🙌 Obrigado por fazer parceria conosco! Sua semente é abençoada. O administrador entrará em contato assim que o comprovante de pagamento for verificado. Obrigado pelo seu apoio no Reino! _\"Congregai a mim os meus santos, aqueles que fizeram comigo aliança com sacrifícios.\" (Salmos 50:5)_",
	},
	"access_denied": {
		models.LanguageEnglish:    "🚫 Access denied. You are not authorized to view this dashboard.",
		models.LanguageSpanish:    "🚫 Acceso denegado. No está autorizado para ver este panel.",
		models.LanguageFrench:     "🚫 Accès refusé. Vous n'êtes pas autorisé à consulter ce tableau de bord.",
		models.LanguagePortuguese: "🚫 Acesso negado. Você não está autorizado a ver este painel.",
	},
	"unknown_option": {
		models.LanguageEnglish:    "🤔 Unknown option. Please choose from the menu.",
		models.LanguageSpanish:    "🤔 Opción desconocida. Por favor, elija del menú.",
		models.LanguageFrench:     "🤔 Option inconnue. Veuillez choisir dans le menu.",
		models.LanguagePortuguese: "🤔 Opção desconhecida. Por favor, escolha no menu.",
	},
	"upload_proof_error": {
		models.LanguageEnglish:    "Please upload a valid photo or document as proof of payment.",
		models.LanguageSpanish:    "Por favor, suba una foto o documento válido como comprobante de pago.",
		models.LanguageFrench:     "Veuillez télécharger une photo ou un document valide comme preuve de paiement.",
		models.LanguagePortuguese: "Por favor, envie uma foto ou um documento válido como comprovante de pagamento.",
	},
	"error_general": {
		models.LanguageEnglish:    "An unexpected error occurred. Please try again later or contact support.",
		models.LanguageSpanish:    "Ocurrió un error inesperado. Por favor, inténtelo de nuevo más tarde o contacte a soporte.",
		models.LanguageFrench:     "Une erreur inattendue s'est produite. Veuillez réessayer plus tard ou contacter le support.",
		models.LanguagePortuguese: "Ocorreu um erro inesperado. Por favor, tente novamente mais tarde ou entre em contato com o suporte.",
	},
	"scripture_discipleship": {
		models.LanguageEnglish:    "_\"Therefore go and make disciples of all nations, baptizing them in the name of the Father and of the Son and of the Holy Spirit, and teaching them to obey everything I have commanded you. And surely I am with you always, to the very end of the age.\" (Matthew 28:19-20)_",
		models.LanguageSpanish:    "_\"Por tanto, id, y haced discípulos a todas las naciones, bautizándolos en el nombre del Padre, y del Hijo, y del Espíritu Santo; enseñándoles que guarden todas las cosas que os he mandado; y he aquí yo estoy con vosotros todos los días, hasta el fin del mundo. Amén.\" (Mateo 28:19-20)_",
		models.LanguageFrench:     "_\"Allez donc, faites de toutes les nations des disciples, les baptisant au nom du Père, du Fils et du Saint-Esprit, et leur enseignant à observer tout ce que je vous ai prescrit. Et voici, je suis avec vous tous les jours, jusqu'à la fin du monde.\" (Matthieu 28:19-20)_",
		models.LanguagePortuguese: "_\"Portanto ide, fazei discípulos de todas as nações, batizando-os em nome do Pai, e do Filho, e do Espírito Santo; ensinando-os a observar todas as coisas que vos tenho mandado; e eis que estou convosco todos os dias, até à consumação dos séculos. Amém.\" (Mateus 28:19-20)_",
	},
	"scripture_masterclass": {
		models.LanguageEnglish:    "_\"A wise man will hear and increase learning, and a man of understanding will attain wise counsel.\" (Proverbs 1:5)_",
		models.LanguageSpanish:    "_\"Oirá el sabio, y aumentará su saber, y el entendido adquirirá consejo.\" (Proverbios 1:5)_",
		models.LanguageFrench:     "_\"Que le sage écoute et augmente son savoir, et que l'homme intelligent acquière de sages conseils.\" (Proverbes 1:5)_",
		models.LanguagePortuguese: "_\"O sábio ouvirá e crescerá em conhecimento, e o entendido adquirirá sábios conselhos.\" (Provérbios 1:5)_",
	},
}
